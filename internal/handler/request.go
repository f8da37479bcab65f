package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tkexclusiv/catalog_api/internal/utils"
)

// maxBodyBytes bounds request bodies. Base64 images of 5 MiB need about 7 MiB.
const maxBodyBytes = 8 << 20

// readJSONObject decodes the body as a JSON object, keeping raw values so
// services can tell omitted fields from nulls. An empty body is {}.
func readJSONObject(c *gin.Context) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	input := map[string]json.RawMessage{}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return input, nil
	}
	if err := json.Unmarshal(body, &input); err != nil {
		return nil, utils.NewValidationError("Invalid JSON body")
	}
	if input == nil {
		input = map[string]json.RawMessage{}
	}
	return input, nil
}

// bindJSON binds the body into dst with gin's JSON binding. An empty body
// leaves dst untouched so the caller's required-field checks report it.
func bindJSON(c *gin.Context, dst any) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return utils.NewValidationError("Invalid JSON body")
	}
	return nil
}

// parseID reads a positive integer id from the query string.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, utils.NewValidationError("Invalid id")
	}
	return id, nil
}

func notFound(c *gin.Context) {
	utils.Error(c, 404, string(utils.KindNotFound), "Not found")
}
