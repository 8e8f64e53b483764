package notification

const (
	subjectWelcome  = "ברוכים הבאים למערכת דירוג השוכרים"
	subjectScoreFmt = "ציון הדירוג שלך מוכן: %.0f"
)
