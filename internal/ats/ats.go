// Package ats runs quick applicant-tracking-system hygiene checks over a
// resume: contact details, bullet structure with action verbs, stale dates.
package ats

import "regexp"

var (
	emailRe  = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe  = regexp.MustCompile(`\+?\d[\d\-\s()]{7,}\d`)
	bulletRe = regexp.MustCompile(`(?m)^\s*[\-*\x{2022}]\s+`)
	actionRe = regexp.MustCompile(`(?i)\b(achieved|built|led|designed|implemented|improved|reduced|increased|optimized|launched|migrated|delivered|automated)\b`)

	// Dates this old suggest the resume needs refreshing.
	oldDateRe = regexp.MustCompile(`\b(201[0-5]|200\d)\b`)
)

// Report is the outcome of a hygiene check.
type Report struct {
	HasEmail     bool `json:"has_email"`
	HasPhone     bool `json:"has_phone"`
	BulletCount  int  `json:"bullet_count"`
	ActionVerbs  int  `json:"action_verbs"`
	OldDatesFlag bool `json:"old_dates_flag"`
}

// Recommendation is a fixed structural tip surfaced alongside the report.
const Recommendation = "Используйте буллеты с глаголами действия и цифрами результата (STAR)."

// Check analyzes resume text for ATS hygiene signals.
func Check(text string) Report {
	return Report{
		HasEmail:     emailRe.MatchString(text),
		HasPhone:     phoneRe.MatchString(text),
		BulletCount:  len(bulletRe.FindAllString(text, -1)),
		ActionVerbs:  len(actionRe.FindAllString(text, -1)),
		OldDatesFlag: oldDateRe.MatchString(text),
	}
}
