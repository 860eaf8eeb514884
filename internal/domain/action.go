package domain

// Action is the logical operation being performed on a resource. The REST
// layer selects the response representation as a pure function of it.
type Action string

const (
	ActionList          Action = "list"
	ActionCreate        Action = "create"
	ActionRetrieve      Action = "retrieve"
	ActionUpdate        Action = "update"
	ActionPartialUpdate Action = "partial_update"
	ActionDestroy       Action = "destroy"
	ActionUploadImage   Action = "upload_image"
)
