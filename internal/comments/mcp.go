package comments

import "context"

// MCP tool wrapper methods with uniform Args/Result signatures.

// ListMCP is the MCP wrapper for List.
func (c *Client) ListMCP(ctx context.Context, args ListArgs) (ListResult, error) {
	result, err := c.List(ctx, args)
	if err != nil {
		return ListResult{}, err
	}
	return *result, nil
}

// GetCommentMCP is the MCP wrapper for GetComment.
func (c *Client) GetCommentMCP(ctx context.Context, args GetArgs) (GetResult, error) {
	result, err := c.GetComment(ctx, args.CommentID)
	if err != nil {
		return GetResult{}, err
	}
	return *result, nil
}

// CreateMCP is the MCP wrapper for Create.
func (c *Client) CreateMCP(ctx context.Context, args CreateArgs) (GetResult, error) {
	result, err := c.Create(ctx, args)
	if err != nil {
		return GetResult{}, err
	}
	return *result, nil
}

// UpdateMCP is the MCP wrapper for Update.
func (c *Client) UpdateMCP(ctx context.Context, args UpdateArgs) (GetResult, error) {
	result, err := c.Update(ctx, args)
	if err != nil {
		return GetResult{}, err
	}
	return *result, nil
}

// DeleteCommentMCP is the MCP wrapper for DeleteComment.
func (c *Client) DeleteCommentMCP(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	result, err := c.DeleteComment(ctx, args.CommentID, args.Force)
	if err != nil {
		return DeleteResult{}, err
	}
	return *result, nil
}

// ModerateMCP is the MCP wrapper for Moderate.
func (c *Client) ModerateMCP(ctx context.Context, args ModerateArgs) (ModerateResult, error) {
	result, err := c.Moderate(ctx, args)
	if err != nil {
		return ModerateResult{}, err
	}
	return *result, nil
}
