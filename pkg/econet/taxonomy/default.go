package taxonomy

// Default returns the built-in 16-category macro-economic catalogue.
// Term lists are bilingual (English/Korean) so the same catalog covers
// both international and Korean news feeds.
func Default() *Catalog {
	c, err := NewCatalog(defaultCategories())
	if err != nil {
		// The built-in data is validated by tests; a failure here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return c
}

func defaultCategories() []Category {
	return []Category{
		{
			ID:        "monetary_policy",
			MainTerms: []string{"통화정책", "금리정책", "기준금리", "연방기금금리", "Fed Rate"},
			RelatedTerms: []string{
				"금리인상", "금리인하", "금리동결", "양적완화", "QE", "Quantitative Easing",
				"테이퍼링", "Tapering", "긴축정책", "완화정책", "중앙은행", "Federal Reserve",
				"Fed", "ECB", "BOJ", "PBOC", "통화공급", "Money Supply", "FOMC",
			},
			Weight: 1.0,
		},
		{
			ID:        "inflation",
			MainTerms: []string{"인플레이션", "Inflation", "물가상승", "CPI", "PCE"},
			RelatedTerms: []string{
				"소비자물가지수", "Consumer Price Index", "근원인플레이션", "Core Inflation",
				"디플레이션", "Deflation", "스태그플레이션", "Stagflation", "물가안정",
				"인플레이션 타겟", "Inflation Target", "물가압력", "Price Pressure",
			},
			Weight: 1.0,
		},
		{
			ID:        "stock_market",
			MainTerms: []string{"주식시장", "Stock Market", "증시", "Equity Market"},
			RelatedTerms: []string{
				"S&P 500", "NASDAQ", "Dow Jones", "KOSPI", "KOSDAQ", "상승장", "하락장",
				"Bull Market", "Bear Market", "변동성", "Volatility", "VIX", "공포지수",
				"시가총액", "Market Cap", "거래량", "Volume", "P/E Ratio", "PER",
			},
			Weight: 1.0,
		},
		{
			ID:        "corporate_performance",
			MainTerms: []string{"기업실적", "실적발표", "Earnings", "Corporate Results"},
			RelatedTerms: []string{
				"매출", "Revenue", "순이익", "Net Income", "영업이익", "Operating Income",
				"EPS", "Earnings Per Share", "가이던스", "Guidance", "실적전망",
				"분기실적", "Quarterly Results", "연간실적", "Annual Results",
			},
			Weight: 0.9,
		},
		{
			ID:        "technology",
			MainTerms: []string{"기술주", "Tech Stocks", "테크주", "Technology Sector"},
			RelatedTerms: []string{
				"Apple", "Microsoft", "Google", "Amazon", "Tesla", "Meta", "Netflix",
				"NVIDIA", "Intel", "AMD", "반도체", "Semiconductor", "AI", "인공지능",
				"클라우드", "Cloud Computing", "전기차", "EV", "Electric Vehicle",
			},
			Weight: 0.9,
		},
		{
			ID:        "financial_sector",
			MainTerms: []string{"금융섹터", "Financial Sector", "은행주", "Banking"},
			RelatedTerms: []string{
				"JPMorgan", "Goldman Sachs", "Bank of America", "Wells Fargo",
				"순이자마진", "NIM", "대출", "Lending", "신용위험", "Credit Risk",
				"자본비율", "Capital Ratio", "스트레스 테스트", "Stress Test",
			},
			Weight: 0.8,
		},
		{
			ID:        "energy",
			MainTerms: []string{"에너지", "Energy", "원유", "Oil", "천연가스", "Natural Gas"},
			RelatedTerms: []string{
				"WTI", "Brent", "OPEC", "셰일오일", "Shale Oil", "정유", "Refining",
				"신재생에너지", "Renewable Energy", "태양광", "Solar", "풍력", "Wind",
				"ExxonMobil", "Chevron", "Shell", "BP",
			},
			Weight: 0.8,
		},
		{
			ID:        "real_estate",
			MainTerms: []string{"부동산", "Real Estate", "주택시장", "Housing Market"},
			RelatedTerms: []string{
				"주택가격", "Home Prices", "모기지", "Mortgage", "주택담보대출",
				"부동산 투자", "Real Estate Investment", "REIT", "상업용 부동산",
				"Commercial Real Estate", "주택 판매", "Home Sales",
			},
			Weight: 0.8,
		},
		{
			ID:        "international_trade",
			MainTerms: []string{"국제무역", "International Trade", "무역전쟁", "Trade War"},
			RelatedTerms: []string{
				"관세", "Tariff", "수출", "Export", "수입", "Import", "무역수지", "Trade Balance",
				"공급망", "Supply Chain", "글로벌화", "Globalization", "WTO",
				"미중무역", "US-China Trade", "브렉시트", "Brexit",
			},
			Weight: 0.8,
		},
		{
			ID:        "cryptocurrency",
			MainTerms: []string{"암호화폐", "Cryptocurrency", "비트코인", "Bitcoin"},
			RelatedTerms: []string{
				"Ethereum", "이더리움", "블록체인", "Blockchain", "DeFi", "NFT",
				"디지털 자산", "Digital Asset", "가상화폐", "Virtual Currency",
				"CBDC", "중앙은행 디지털화폐", "Stablecoin", "스테이블코인",
			},
			Weight: 0.7,
		},
		{
			ID:        "esg",
			MainTerms: []string{"ESG", "지속가능성", "Sustainability", "친환경"},
			RelatedTerms: []string{
				"탄소중립", "Carbon Neutral", "기후변화", "Climate Change",
				"그린에너지", "Green Energy", "사회적 책임", "Social Responsibility",
				"지배구조", "Governance", "지속가능 투자", "Sustainable Investment",
			},
			Weight: 0.7,
		},
		{
			ID:        "labor_market",
			MainTerms: []string{"고용시장", "Labor Market", "실업률", "Unemployment Rate"},
			RelatedTerms: []string{
				"비농업 고용", "Non-farm Payroll", "구인", "Job Opening", "임금상승",
				"Wage Growth", "노동참여율", "Labor Participation Rate",
				"구직급여", "Unemployment Benefits", "일자리 창출", "Job Creation",
			},
			Weight: 0.8,
		},
		{
			ID:        "consumer_spending",
			MainTerms: []string{"소비", "Consumer Spending", "소매판매", "Retail Sales"},
			RelatedTerms: []string{
				"소비자 신뢰", "Consumer Confidence", "개인소비", "Personal Consumption",
				"소비심리", "Consumer Sentiment", "가계소득", "Household Income",
				"저축률", "Savings Rate", "소비패턴", "Consumption Pattern",
			},
			Weight: 0.8,
		},
		{
			ID:        "government_policy",
			MainTerms: []string{"정부정책", "Government Policy", "재정정책", "Fiscal Policy"},
			RelatedTerms: []string{
				"정부지출", "Government Spending", "세금", "Tax", "세율", "Tax Rate",
				"부채", "Debt", "적자", "Deficit", "예산", "Budget", "부양책", "Stimulus",
				"인프라", "Infrastructure", "규제", "Regulation",
			},
			Weight: 0.8,
		},
		{
			ID:        "geopolitical_risk",
			MainTerms: []string{"지정학적 리스크", "Geopolitical Risk", "국제정치", "International Politics"},
			RelatedTerms: []string{
				"전쟁", "War", "분쟁", "Conflict", "제재", "Sanctions", "외교", "Diplomacy",
				"안보", "Security", "테러", "Terrorism", "정치적 불안", "Political Instability",
				"선거", "Election", "정권교체", "Regime Change",
			},
			Weight: 0.7,
		},
		{
			ID:        "market_sentiment",
			MainTerms: []string{"시장심리", "Market Sentiment", "투자심리", "Investor Sentiment"},
			RelatedTerms: []string{
				"공포", "Fear", "탐욕", "Greed", "낙관", "Optimism", "비관", "Pessimism",
				"위험회피", "Risk Aversion", "위험선호", "Risk Appetite",
				"시장 분위기", "Market Mood", "투자자 신뢰", "Investor Confidence",
			},
			Weight: 0.7,
		},
	}
}

var displayNames = map[string]string{
	"monetary_policy":       "통화정책",
	"inflation":             "인플레이션",
	"stock_market":          "주식시장",
	"corporate_performance": "기업실적",
	"technology":            "기술주",
	"financial_sector":      "금융섹터",
	"energy":                "에너지",
	"real_estate":           "부동산",
	"international_trade":   "국제무역",
	"cryptocurrency":        "암호화폐",
	"esg":                   "ESG",
	"labor_market":          "고용시장",
	"consumer_spending":     "소비",
	"government_policy":     "정부정책",
	"geopolitical_risk":     "지정학적 리스크",
	"market_sentiment":      "시장심리",
}
