package service

const maxRiskScore = 100

// riskTrigger adds weight once when any of its keywords occurs in the text
type riskTrigger struct {
	weight   int
	keywords []string
}

var riskTriggers = []riskTrigger{
	{weight: 70, keywords: []string{"murder", "theft", "fraud", "assault"}},
	{weight: 40, keywords: []string{"divorce", "custody", "dowry"}},
	{weight: 30, keywords: []string{"land", "property", "possession"}},
	{weight: 20, keywords: []string{"contract", "agreement", "breach"}},
	{weight: 25, keywords: []string{"pollution", "environment"}},
}

// CalculateRiskScore returns the heuristic risk of text in [0, 100]
func CalculateRiskScore(text string) int {
	lower := normalize(text)
	score := 0
	for _, trigger := range riskTriggers {
		if containsAny(lower, trigger.keywords...) {
			score += trigger.weight
		}
	}
	if score > maxRiskScore {
		return maxRiskScore
	}
	return score
}
