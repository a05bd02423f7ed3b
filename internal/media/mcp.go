package media

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

// GetMediaMCP is the MCP wrapper for GetMedia.
func (c *Client) GetMediaMCP(ctx context.Context, args GetArgs) (GetResult, error) {
	result, err := c.GetMedia(ctx, args.MediaID)
	if err != nil {
		return GetResult{}, err
	}
	return *result, nil
}

// UploadMCP is the MCP wrapper for Upload.
func (c *Client) UploadMCP(ctx context.Context, args UploadArgs) (GetResult, error) {
	result, err := c.Upload(ctx, args)
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

// DeleteMediaMCP is the MCP wrapper for DeleteMedia. The force flag is
// accepted for interface symmetry but deletion is always permanent.
func (c *Client) DeleteMediaMCP(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	result, err := c.DeleteMedia(ctx, args.MediaID)
	if err != nil {
		return DeleteResult{}, err
	}
	return *result, nil
}

// GetURLMCP is the MCP wrapper for GetURL.
func (c *Client) GetURLMCP(ctx context.Context, args GetURLArgs) (GetURLResult, error) {
	result, err := c.GetURL(ctx, args)
	if err != nil {
		return GetURLResult{}, err
	}
	return *result, nil
}
