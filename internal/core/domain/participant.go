package domain

// Contact is the shared identity of every auction house participant.
type Contact struct {
	Name    string
	Address string
}

// Buyer can note interest in lots and bid on them. The auth code authorizes
// outgoing transfers from the buyer's account during settlement.
type Buyer struct {
	Contact
	Account  string
	AuthCode string
}

// Seller owns lots and receives the hammer price less commission.
type Seller struct {
	Contact
	Account string
}

// Auctioneer runs one lot's auction. It is bound to the lot while the lot is
// open and only the matching auctioneer may close it.
type Auctioneer struct {
	Contact
}
