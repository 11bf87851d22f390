package tui

import "context"

// Phone asks for the account phone number. Used by the transport when the
// stored session is not authorized yet.
func (c *Console) Phone(ctx context.Context) (string, error) {
	return c.Prompt(ctx, "Enter your phone number (international format): ")
}

// Code asks for the login code delivered by the messaging service.
func (c *Console) Code(ctx context.Context) (string, error) {
	return c.Prompt(ctx, "Enter the login code you received: ")
}
