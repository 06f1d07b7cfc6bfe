package dto

type RoleItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
