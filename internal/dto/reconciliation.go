package dto

// ConfirmMatchRequest links one ticket to one bank transaction.
type ConfirmMatchRequest struct {
	TicketID      string `json:"ticketID" binding:"required"`
	TransactionID string `json:"transactionID" binding:"required"`
}

// ConfirmMatchResponse is returned once both records are reconciled.
type ConfirmMatchResponse struct {
	TicketID      string `json:"ticketID"`
	TransactionID string `json:"transactionID"`
	Reconciled    bool   `json:"reconciled"`
}
