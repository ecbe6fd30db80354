package constvars

var CustomValidationErrorMessages = map[string]string{
	"required":          "is required",
	"min":               "must be at least %s characters long",
	"max":               "maximum at %s characters long",
	"numeric":           "must be a number",
	"len":               "must be %s characters long",
	"oneof":             "must be one of [%s]",
	"uuid":              "must be a valid UUID",
	"url":               "must be a valid URL",
	"gt":                "must be greater than %s",
	"gte":               "must be greater than or equal to %s",
	"lt":                "must be less than %s",
	"lte":               "must be less than or equal to %s",
	"datetime":          "must be a valid datetime",
	"emr_datetime":      "must be a valid datetime",
	"procedure_outcome": "must be one of [SUCCESSFUL, PARTIALLY_SUCCESSFUL, NOT_SUCCESSFUL]",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}
