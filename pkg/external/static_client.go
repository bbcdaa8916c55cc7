package external

import (
	"context"

	"github.com/ncats-translator/trapi-summarizer/internal/domain"
)

// StaticAnnotationClient is a fixed-table domain.AnnotationClient, used in
// place of HTTPAnnotationClient wherever a test or local run needs
// deterministic annotations without reaching a real service.
type StaticAnnotationClient struct {
	Table map[string]domain.Annotation
}

// Annotate implements domain.AnnotationClient by looking curies up in the
// fixed table; a miss is simply absent from the result, matching the real
// client's behavior for CURIEs the service doesn't recognize.
func (c *StaticAnnotationClient) Annotate(_ context.Context, curies []string) (map[string]domain.Annotation, error) {
	out := make(map[string]domain.Annotation, len(curies))
	for _, curie := range curies {
		if ann, ok := c.Table[curie]; ok {
			out[curie] = ann
		}
	}
	return out, nil
}
