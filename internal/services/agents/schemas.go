package agents

import "google.golang.org/genai"

// Schemas handed to the model as ResponseSchema constraints. Structure and
// field names mirror the output models exactly so DecodeJSON lands cleanly.

func costingAnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"estimatedYield":     {Type: genai.TypeString, Description: "Estimated yield with unit, e.g. '20 quintals per acre'"},
			"costOfProduction":   {Type: genai.TypeString, Description: "Estimated cost of production in INR"},
			"postProductionCost": {Type: genai.TypeString, Description: "Post-production cost in INR (storage, transport, packaging)"},
			"estimatedSales":     {Type: genai.TypeString, Description: "Estimated sales value in INR"},
			"estimatedProfit":    {Type: genai.TypeString, Description: "Estimated net profit in INR"},
		},
		Required: []string{"estimatedYield", "costOfProduction", "postProductionCost", "estimatedSales", "estimatedProfit"},
	}
}

func marketAnalysisOutputSchema() *genai.Schema {
	pricePoint := func(withMarket bool) *genai.Schema {
		props := map[string]*genai.Schema{
			"price": {Type: genai.TypeNumber},
			"unit":  {Type: genai.TypeString, Description: "e.g. 'INR per quintal'"},
			"date":  {Type: genai.TypeString, Description: "YYYY-MM-DD"},
		}
		required := []string{"price", "unit", "date"}
		if withMarket {
			props["market"] = &genai.Schema{Type: genai.TypeString, Description: "Name of the quoting market (mandi)"}
			required = append(required, "market")
		}
		return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"marketSummary": {Type: genai.TypeString, Description: "Concise overview of the current market situation"},
			"corePriceInfo": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"currentPrice": pricePoint(true),
					"dailyPriceRange": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"low":  {Type: genai.TypeNumber},
							"high": {Type: genai.TypeNumber},
							"unit": {Type: genai.TypeString},
						},
						Required: []string{"low", "high", "unit"},
					},
				},
				Required: []string{"currentPrice", "dailyPriceRange"},
			},
			"historicalTrendAnalysis": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"previousDayPrice": pricePoint(false),
					"priceChange": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"change":           {Type: genai.TypeNumber},
							"percentageChange": {Type: genai.TypeNumber},
						},
						Required: []string{"change", "percentageChange"},
					},
					"priceTrend": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"direction": {Type: genai.TypeString, Enum: []string{"Upward", "Downward", "Stable", "Volatile"}},
							"period":    {Type: genai.TypeString, Description: "e.g. 'last 7 days'"},
						},
						Required: []string{"direction", "period"},
					},
				},
				Required: []string{"previousDayPrice", "priceChange", "priceTrend"},
			},
			"marketDynamics": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"supplyStatus": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"status": {Type: genai.TypeString, Enum: []string{"High", "Moderate", "Low"}},
							"impact": {Type: genai.TypeString},
						},
						Required: []string{"status", "impact"},
					},
					"demandStatus": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"status": {Type: genai.TypeString, Enum: []string{"Strong", "Moderate", "Weak"}},
							"impact": {Type: genai.TypeString},
						},
						Required: []string{"status", "impact"},
					},
				},
				Required: []string{"supplyStatus", "demandStatus"},
			},
			"actionableInsight": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"recommendation": {Type: genai.TypeString},
					"reasoning":      {Type: genai.TypeString},
				},
				Required: []string{"recommendation", "reasoning"},
			},
			"additionalInfo": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"lastUpdated": {Type: genai.TypeString},
					"dataSource":  {Type: genai.TypeString},
				},
				Required: []string{"lastUpdated", "dataSource"},
			},
			"costingAnalysis": costingAnalysisSchema(),
		},
		Required: []string{"marketSummary", "corePriceInfo", "historicalTrendAnalysis", "marketDynamics", "actionableInsight", "additionalInfo", "costingAnalysis"},
	}
}

func cropRecommenderOutputSchema() *genai.Schema {
	crop := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"cropName":                 {Type: genai.TypeString},
			"cropDetails":              {Type: genai.TypeString},
			"sowingTime":               {Type: genai.TypeString},
			"dependency":               {Type: genai.TypeString, Description: "Key dependencies such as irrigation, labor, inputs"},
			"resourceAllocation":       {Type: genai.TypeString},
			"soilRequirements":         {Type: genai.TypeString},
			"weatherConditions":        {Type: genai.TypeString},
			"yieldPotential":           {Type: genai.TypeString},
			"marketTrends":             {Type: genai.TypeString},
			"profitability":            {Type: genai.TypeString},
			"locationSuitability":      {Type: genai.TypeString},
			"regionalCropPerformance":  {Type: genai.TypeString},
			"pestAndDiseaseManagement": {Type: genai.TypeString},
			"climateRisk":              {Type: genai.TypeString},
			"costingAnalysis":          costingAnalysisSchema(),
		},
		Required: []string{
			"cropName", "cropDetails", "sowingTime", "dependency", "resourceAllocation",
			"soilRequirements", "weatherConditions", "yieldPotential", "marketTrends",
			"profitability", "locationSuitability", "regionalCropPerformance",
			"pestAndDiseaseManagement", "climateRisk", "costingAnalysis",
		},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recommendations": {
				Type:     genai.TypeArray,
				Items:    crop,
				MinItems: genai.Ptr[int64](3),
			},
		},
		Required: []string{"recommendations"},
	}
}

func cropDiagnosisOutputSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"healthStatus": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"status":   {Type: genai.TypeString, Enum: []string{"Healthy", "Infected", "At Risk"}},
					"severity": {Type: genai.TypeString, Enum: []string{"Low", "Medium", "High", "N/A"}},
					"summary":  {Type: genai.TypeString},
				},
				Required: []string{"status", "severity", "summary"},
			},
			"diseaseIdentification": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":        {Type: genai.TypeString, Description: "Disease or pest name, 'N/A' if healthy"},
					"description": {Type: genai.TypeString},
				},
				Required: []string{"name", "description"},
			},
			"symptoms":   {Type: genai.TypeString},
			"remedies":   {Type: genai.TypeString},
			"prevention": {Type: genai.TypeString},
		},
		Required: []string{"healthStatus", "diseaseIdentification", "symptoms", "remedies", "prevention"},
	}
}

func irrigationSchedulerOutputSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"schedule": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"date":      {Type: genai.TypeString, Description: "YYYY-MM-DD, on or after the current date"},
						"startTime": {Type: genai.TypeString, Description: "HH:MM, 24-hour"},
						"endTime":   {Type: genai.TypeString, Description: "HH:MM, 24-hour"},
						"message":   {Type: genai.TypeString, Description: "Short instruction for this watering"},
					},
					Required: []string{"date", "startTime", "endTime", "message"},
				},
			},
		},
		Required: []string{"schedule"},
	}
}

func governmentSchemesOutputSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"schemes": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"schemeName":         {Type: genai.TypeString},
						"details":            {Type: genai.TypeString},
						"benefits":           {Type: genai.TypeString},
						"eligibility":        {Type: genai.TypeString},
						"applicationProcess": {Type: genai.TypeString},
						"documentsRequired":  {Type: genai.TypeString},
						"sourceLink":         {Type: genai.TypeString, Description: "Official application or information URL"},
					},
					Required: []string{"schemeName", "details", "benefits", "eligibility", "applicationProcess", "documentsRequired", "sourceLink"},
				},
			},
			"summary": {Type: genai.TypeString, Description: "One or two sentences describing the overall result"},
		},
		Required: []string{"schemes", "summary"},
	}
}

func postHarvestOutputSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"storageRecommendations":     {Type: genai.TypeString},
			"transportationOptions":      {Type: genai.TypeString},
			"marketLinkages":             {Type: genai.TypeString},
			"valueAdditionOpportunities": {Type: genai.TypeString},
			"pricingStrategy":            {Type: genai.TypeString},
			"qualityControlMeasures":     {Type: genai.TypeString},
			"postHarvestHandling":        {Type: genai.TypeString},
			"wasteManagement":            {Type: genai.TypeString},
			"costingAnalysis":            costingAnalysisSchema(),
		},
		Required: []string{
			"storageRecommendations", "transportationOptions", "marketLinkages",
			"valueAdditionOpportunities", "pricingStrategy", "qualityControlMeasures",
			"postHarvestHandling", "wasteManagement", "costingAnalysis",
		},
	}
}

func currentCropAgentOutputSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {Type: genai.TypeString, Description: "Direct conversational answer to the farmer's question"},
			"structuredAdvice": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":   {Type: genai.TypeString},
						"content": {Type: genai.TypeString},
						"icon":    {Type: genai.TypeString, Enum: []string{"Bot", "TrendingUp", "Landmark", "FlaskConical", "ShieldAlert", "Droplet", "Info"}},
					},
					Required: []string{"title", "content", "icon"},
				},
			},
		},
		Required: []string{"summary", "structuredAdvice"},
	}
}

// Parameter schemas for the agents offered to the conversational router as
// tools. Only the fields a voice query can plausibly carry are exposed.

func marketAnalysisToolParams() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"query":     {Type: genai.TypeString, Description: "The farmer's market question, verbatim"},
			"commodity": {Type: genai.TypeString, Description: "Crop or commodity the question is about"},
			"location":  {Type: genai.TypeString, Description: "City, district, or state mentioned by the farmer"},
			"market":    {Type: genai.TypeString, Description: "Specific market (mandi) if named"},
		},
		Required: []string{"query"},
	}
}

func cropRecommenderToolParams() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"location":      {Type: genai.TypeString, Description: "Location to recommend crops for. Required; ask the farmer if missing."},
			"landSize":      {Type: genai.TypeString, Description: "Land size with unit if mentioned, e.g. '2 acres'"},
			"soilType":      {Type: genai.TypeString, Description: "Soil type if mentioned"},
			"userGoal":      {Type: genai.TypeString, Description: "The farmer's stated goal, e.g. maximize profit"},
			"lastCropGrown": {Type: genai.TypeString, Description: "Previously grown crop if mentioned"},
		},
		Required: []string{"location"},
	}
}

func governmentSchemesToolParams() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"query": {Type: genai.TypeString, Description: "Topic to search schemes for, e.g. 'crop insurance' or 'irrigation subsidy'"},
		},
		Required: []string{"query"},
	}
}
