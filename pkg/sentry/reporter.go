package sentry

import (
	"addressbook/errs"

	sentrygo "github.com/getsentry/sentry-go"
)

// Reporter forwards failed contact requests to Sentry. Failures of the
// source are expected operational noise, so they go out as warnings tagged
// with their error code.
type Reporter struct {
	Tags map[string]string
}

func NewReporter(tags map[string]string) *Reporter {
	return &Reporter{Tags: tags}
}

func (r *Reporter) Report(err error) {
	if err == nil {
		return
	}

	tags := make(map[string]string, len(r.Tags)+1)
	for k, v := range r.Tags {
		tags[k] = v
	}
	tags["error_code"] = errs.ErrorCode(err)

	new(Sentry).
		WithError(err).
		WithLevel(sentrygo.LevelWarning).
		WithTags(tags).
		sendError()
}
