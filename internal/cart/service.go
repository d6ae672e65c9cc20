package cart

// Service orchestrates cart operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(userID string) Cart {
	return s.repo.Get(userID)
}

// AddItem upserts a line item, accumulating quantity for repeated products.
func (s *Service) AddItem(userID string, productID, quantity int) Cart {
	return s.repo.AddItem(userID, productID, quantity)
}

// UpdateItem sets a line's quantity; zero or less removes the line.
func (s *Service) UpdateItem(userID string, productID, quantity int) (Cart, error) {
	return s.repo.UpdateItem(userID, productID, quantity)
}

func (s *Service) RemoveItem(userID string, productID int) (Cart, error) {
	return s.repo.RemoveItem(userID, productID)
}

func (s *Service) Clear(userID string) {
	s.repo.Clear(userID)
}
