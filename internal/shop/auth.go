package shop

import (
	"regexp"
	"time"
	"unicode/utf8"

	"storefront/models"
)

const PasswordMinLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Registration is the sign-up form.
type Registration struct {
	Email           string `json:"email"`
	FullName        string `json:"fullName"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Directory is the persisted list of accounts.
type Directory []models.UserAccount

func (d Directory) indexByEmail(email string) int {
	for i, u := range d {
		if u.Email == email {
			return i
		}
	}
	return -1
}

func (d Directory) indexByID(id string) int {
	for i, u := range d {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// Authenticate finds the account matching both email and password.
func (d Directory) Authenticate(email, password string) (models.UserAccount, bool) {
	for _, u := range d {
		if u.Email == email && u.Password == password {
			return u, true
		}
	}
	return models.UserAccount{}, false
}

func passwordLen(p string) int { return utf8.RuneCountInString(p) }

// ValidateRegistration applies the sign-up rules in order and returns the first failure.
func ValidateRegistration(d Directory, r Registration) error {
	if r.Email == "" || r.FullName == "" || r.Phone == "" || r.Password == "" || r.ConfirmPassword == "" {
		return ErrMissingFields
	}
	if r.Password != r.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if passwordLen(r.Password) < PasswordMinLength {
		return ErrPasswordTooShort
	}
	if !emailPattern.MatchString(r.Email) {
		return ErrInvalidEmail
	}
	if d.indexByEmail(r.Email) >= 0 {
		return ErrEmailTaken
	}
	return nil
}

// Register validates r and returns the directory with the new account appended.
// The input directory is left untouched.
func Register(d Directory, r Registration, id string, now time.Time) (Directory, models.UserAccount, error) {
	if err := ValidateRegistration(d, r); err != nil {
		return d, models.UserAccount{}, err
	}
	account := models.UserAccount{
		ID:        id,
		Email:     r.Email,
		FullName:  r.FullName,
		Phone:     r.Phone,
		Password:  r.Password,
		CreatedAt: now.UTC(),
	}
	next := make(Directory, 0, len(d)+1)
	next = append(next, d...)
	next = append(next, account)
	return next, account, nil
}

// Login checks credentials without telling apart an unknown email from a wrong password.
func Login(d Directory, email, password string) (models.UserAccount, error) {
	if email == "" || password == "" {
		return models.UserAccount{}, ErrMissingCredentials
	}
	account, ok := d.Authenticate(email, password)
	if !ok {
		return models.UserAccount{}, ErrInvalidCredentials
	}
	return account, nil
}

// SignIn makes account the session identity, replacing any previous one.
func (s *State) SignIn(account models.UserAccount) {
	session := account.Session()
	s.Session = &session
}

// SignOut returns the state to anonymous. Cart and ledger are kept.
func (s *State) SignOut() {
	s.Session = nil
}
