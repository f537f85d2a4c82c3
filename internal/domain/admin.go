package domain

type AdminId = string

type Admin struct {
	Id       AdminId `json:"id"`
	Username string  `json:"username"`
	PassHash string  `json:"passwordHash"`
}

type Credentials struct {
	Username string
	Password string
}

// Principal is what a verified session token says about its bearer.
type Principal struct {
	AdminId   AdminId
	IssuedAt  int64
	ExpiresAt int64
}
