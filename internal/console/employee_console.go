package console

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// runEmployee is the free-text shell: every utterance goes through the
// extractor and the adjudication service until the user logs out.
func (c *Console) runEmployee(ctx context.Context, name string) error {
	c.printf("\nHello %s! You are now logged in.\n", name)
	c.println("Type your request. Type 'quit' to log out and return to main menu.")

	for {
		input, ok := c.prompt(">> ")
		if !ok {
			return nil
		}
		if strings.ToLower(input) == "quit" {
			c.println("Logging out...")
			c.println()
			return nil
		}

		reply, err := c.assistant.HandleUtterance(ctx, name, input)
		if err != nil {
			c.logger.Error("utterance handling failed", zap.String("employee", name), zap.Error(err))
			return err
		}
		c.println(reply)
	}
}
