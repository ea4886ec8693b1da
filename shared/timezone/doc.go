// Package timezone holds the location used for wall-clock timestamps such as
// workbook creation metadata. Generated calendar dates are civil dates and do
// not depend on it.
//
//	timezone.Init(cfg.App.Timezone)
//	created := timezone.Format(timezone.Now(), time.RFC3339)
//
// Use IANA names ("UTC", "Asia/Kolkata"). Unknown names fall back to UTC.
package timezone
