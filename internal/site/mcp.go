package site

import "context"

// MCP tool wrapper methods with uniform Args/Result signatures.

// InfoMCP is the MCP wrapper for Info.
func (c *Client) InfoMCP(ctx context.Context, _ InfoArgs) (InfoResult, error) {
	result, err := c.Info(ctx)
	if err != nil {
		return InfoResult{}, err
	}
	return *result, nil
}

// TestConnectionMCP is the MCP wrapper for TestConnection.
func (c *Client) TestConnectionMCP(ctx context.Context, _ TestArgs) (TestResult, error) {
	result, err := c.TestConnection(ctx)
	if err != nil {
		return TestResult{}, err
	}
	return *result, nil
}
