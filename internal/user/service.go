package user

import "time"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register stores a new user with default preferences. The password is
// kept as submitted; this demo has no credential security.
func (s *Service) Register(email, password, name string) (User, error) {
	return s.repo.Create(User{
		Email:     email,
		Password:  password,
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Preferences: Preferences{
			Theme:         "dark",
			Notifications: true,
		},
	})
}

// Authenticate checks the submitted password against the stored one.
func (s *Service) Authenticate(email, password string) (User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil || u.Password != password {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}
