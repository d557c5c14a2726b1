package domain

// Credentials carries a normalized email and a plaintext password. It only
// ever lives for the duration of a login attempt and is never persisted.
type Credentials struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
