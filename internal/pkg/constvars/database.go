package constvars

const (
	MongoCollectionSubmissions = "procedure_submissions"
)
