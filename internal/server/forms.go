package server

import (
	"context"
	"mime"
	"net/http"
	"strconv"
	"time"

	"alkhair/pkg/types"
)

const mutationTimeout = 10 * time.Second

type listQuery struct {
	Q string `form:"q"`
}

type matchQuery struct {
	Scope types.MatchScope `form:"scope"`
	Field types.MatchField `form:"field"`
	Value string           `form:"value"`
}

type caseOp func(ctx context.Context, id int64) (types.Case, error)

type mediaRef struct {
	URL string `json:"url"`
}

func decodeQuery(r *http.Request, dst any) error {
	if err := decoder.Decode(dst, r.URL.Query()); err != nil {
		return &types.ValidationError{Reason: "invalid query: " + err.Error()}
	}
	return nil
}

// pathID reads a numeric route parameter. The router only matches digits,
// so a failure here means an overflow.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, &types.ValidationError{Fields: []string{name}}
	}
	return id, nil
}

// mediaKind reads the :kind route parameter.
func mediaKind(r *http.Request) types.MediaKind {
	return types.MediaKind(r.PathValue("kind"))
}

func mutationContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), mutationTimeout)
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}
