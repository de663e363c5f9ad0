package ticket

// Admin is a support agent from the static directory.
type Admin struct {
	ID          string
	Name        string
	Email       string
	Avatar      *string
	TicketCount int
}

// FindAdmin returns the admin with the given id, or nil.
func FindAdmin(admins []Admin, id string) *Admin {
	for i := range admins {
		if admins[i].ID == id {
			a := admins[i]
			return &a
		}
	}
	return nil
}
