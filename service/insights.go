package service

import (
	"strings"

	"legaldoc-backend/models"
)

// insightTable is read-only after package init; callers must not mutate returned slices.
var insightTable = map[models.CaseNature]models.InsightBundle{
	models.CaseCriminal: {
		IPCSections: []string{
			"IPC 302 – Murder",
			"IPC 376 – Sexual Offences",
			"IPC 420 – Cheating",
		},
		Remedies: []string{
			"File FIR at nearest police station",
			"Apply for anticipatory bail",
			"Consult a criminal defense lawyer",
		},
		Lawyers: []string{
			"Rajesh Kumar – Criminal Lawyer, Delhi (📞 +91-9876543210)",
			"Anita Sharma – High Court Criminal Lawyer, Mumbai (📞 +91-9123456780)",
		},
	},
	models.CaseFamily: {
		IPCSections: []string{
			"HMA 13 – Divorce Grounds",
			"DV Act 2005 – Domestic Violence",
		},
		Remedies: []string{
			"File for divorce or maintenance",
			"Seek protection order under DV Act",
		},
		Lawyers: []string{
			"Ritu Mehra – Family Law Expert, Pune (📞 +91-9090909090)",
			"Sameer Patel – Family Court Lawyer, Ahmedabad (📞 +91-8787878787)",
		},
	},
	models.CaseProperty: {
		IPCSections: []string{
			"Transfer of Property Act 1882",
			"Registration Act 1908",
		},
		Remedies: []string{
			"Verify title deed and ownership",
			"File a civil property suit in court",
		},
		Lawyers: []string{
			"Nisha Singh – Property Lawyer, Chennai (📞 +91-9345678901)",
			"Arun Kumar – Real Estate Legal Advisor, Delhi (📞 +91-9812345678)",
		},
	},
	models.CaseContract: {
		IPCSections: []string{
			"Indian Contract Act 1872",
			"Specific Relief Act 1963",
		},
		Remedies: []string{
			"Send a legal notice to the other party",
			"File a breach of contract suit",
		},
		Lawyers: []string{
			"Manish Rao – Business Lawyer, Hyderabad (📞 +91-9999988888)",
		},
	},
	models.CaseEnvironmental: {
		IPCSections: []string{
			"Environment Protection Act 1986",
			"Water (Prevention and Control of Pollution) Act 1974",
		},
		Remedies: []string{
			"File complaint to Pollution Control Board",
			"Approach National Green Tribunal (NGT)",
		},
		Lawyers: []string{
			"Neha Gupta – Environmental Lawyer, Bengaluru (📞 +91-9012345678)",
		},
	},
}

var defaultInsights = models.InsightBundle{
	IPCSections: []string{"No specific IPC sections found."},
	Remedies:    []string{"No direct remedies detected."},
	Lawyers:     []string{"No lawyer recommendation available."},
}

// LookupInsights returns the static insight bundle for a case nature,
// or the "no information" bundle for unknown labels
func LookupInsights(nature models.CaseNature) models.InsightBundle {
	if bundle, ok := insightTable[nature]; ok {
		return bundle
	}
	return defaultInsights
}

const punishmentsNotDetermined = "Not determined"

var punishmentTable = []struct {
	marker string
	text   string
}{
	{"Criminal", "Possible punishments: Fine, Imprisonment"},
	{"Family", "Possible punishments: Custody changes, Divorce settlement"},
	{"Property", "Possible punishments: Property seizure, Compensation"},
	{"Contract", "Possible punishments: Monetary damages, Contract termination"},
	{"Environmental", "Possible punishments: Fines, License cancellation"},
}

// DescribePunishments maps a case nature to its punishment description
func DescribePunishments(nature models.CaseNature) string {
	for _, p := range punishmentTable {
		if strings.Contains(string(nature), p.marker) {
			return p.text
		}
	}
	return punishmentsNotDetermined
}
