package models

// Group is the stored form: members are student ids in the order the
// names were supplied.
type Group struct {
	ID        int    `json:"id"`
	GroupName string `json:"groupName"`
	Members   []int  `json:"members"`
}

// ExpandedGroup is built on demand for single-group reads. A member id
// without a matching student is left as a nil slot.
type ExpandedGroup struct {
	ID        int        `json:"id"`
	GroupName string     `json:"groupName"`
	Members   []*Student `json:"members"`
}

type CreateGroupRequest struct {
	GroupName string   `json:"groupName"`
	Members   []string `json:"members"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
