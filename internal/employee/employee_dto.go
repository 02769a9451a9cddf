package employee

type CreateEmployeeRequest struct {
	FirstName        string `json:"first_name" binding:"required"`
	MiddleName       string `json:"middle_name"`
	LastName         string `json:"last_name" binding:"required"`
	NationalIDNumber string `json:"national_id_number"`
	LoginID          string `json:"login_id" binding:"required"`
	JobTitle         string `json:"job_title" binding:"required"`
	BirthDate        string `json:"birth_date" binding:"required"`
	MaritalStatus    string `json:"marital_status" binding:"required,oneof=S M"`
	Gender           string `json:"gender" binding:"required,oneof=M F"`
	SalariedFlag     bool   `json:"salaried_flag"`
}

type UpdateEmployeeRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	MiddleName    string `json:"middle_name"`
	LastName      string `json:"last_name" binding:"required"`
	JobTitle      string `json:"job_title" binding:"required"`
	MaritalStatus string `json:"marital_status" binding:"required,oneof=S M"`
	Gender        string `json:"gender" binding:"required,oneof=M F"`
	SalariedFlag  bool   `json:"salaried_flag"`
}

type EmployeeResponse struct {
	BusinessEntityID int    `json:"business_entity_id"`
	FirstName        string `json:"first_name"`
	MiddleName       string `json:"middle_name,omitempty"`
	LastName         string `json:"last_name"`
	NationalIDNumber string `json:"national_id_number"`
	LoginID          string `json:"login_id"`
	JobTitle         string `json:"job_title"`
	BirthDate        string `json:"birth_date"`
	MaritalStatus    string `json:"marital_status"`
	Gender           string `json:"gender"`
	HireDate         string `json:"hire_date,omitempty"`
	SalariedFlag     bool   `json:"salaried_flag"`
	VacationHours    int16  `json:"vacation_hours"`
	SickLeaveHours   int16  `json:"sick_leave_hours"`
	CurrentFlag      bool   `json:"current_flag"`
}
