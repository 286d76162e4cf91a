package identity

type RegistrationDTO struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	UserName    string   `json:"userName" validate:"required,max=60"`
	Password    string   `json:"password" validate:"required,min=6"`
	Email       string   `json:"email" validate:"omitempty,email"`
	PhoneNumber string   `json:"phoneNumber"`
	Roles       []string `json:"roles"`
}

type CredentialsDTO struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenDTO struct {
	Token string `json:"Token"`
}
