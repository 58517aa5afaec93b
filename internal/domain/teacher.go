package domain

// Teacher is a staff member allowed to manage activity rosters.
// Credentials are loaded once at startup and never change at runtime.
type Teacher struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
