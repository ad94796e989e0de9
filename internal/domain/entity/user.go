package entity

// User is the aggregate root for the account domain: profile fields plus the
// address book and order history it exclusively owns.
//
// No credential is stored; authentication is a simulated boundary and a real
// credential service would live behind the account store's contract.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Addresses []Address `json:"addresses"`
	Orders    []Order   `json:"orders"`
}

// Address is one entry in a user's address book. Within a non-empty address
// book exactly one address has IsDefault set.
type Address struct {
	ID           string `json:"id"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	IsDefault    bool   `json:"isDefault"`
}

// DefaultAddress returns the default address, or nil when the book is empty.
func (u *User) DefaultAddress() *Address {
	for i := range u.Addresses {
		if u.Addresses[i].IsDefault {
			return &u.Addresses[i]
		}
	}
	return nil
}

// OrderByID returns the order with the given id, or nil.
func (u *User) OrderByID(id string) *Order {
	for i := range u.Orders {
		if u.Orders[i].ID == id {
			return &u.Orders[i]
		}
	}
	return nil
}
