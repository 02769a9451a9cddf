package department

type CreateDepartmentRequest struct {
	Name      string `json:"name" binding:"required"`
	GroupName string `json:"group_name" binding:"required"`
}

type UpdateDepartmentRequest struct {
	Name      string `json:"name" binding:"required"`
	GroupName string `json:"group_name" binding:"required"`
}

type DepartmentResponse struct {
	DepartmentID int16  `json:"department_id"`
	Name         string `json:"name"`
	GroupName    string `json:"group_name"`
}
