package catalog

import (
	"context"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	domain "github.com/mohammadpnp/creations-admin/internal/domain/catalog"
	"go.uber.org/zap"
)

func optionalText(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return nil
	}
	return &v
}

var decimalNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// parsePrice reads plain decimal notation only. Hex floats, digit
// underscores and NaN never reach ParseFloat. The sign is checked by
// ProductDraft.Validate.
func parsePrice(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if !decimalNumber.MatchString(raw) {
		return 0, false
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(price, 0) {
		return 0, false
	}
	return price, true
}

// parseStock never fails: unparsable or negative counts become zero.
func parseStock(raw string) int {
	stock, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || stock < 0 {
		return 0
	}
	return stock
}

// parseGallery reads a JSON array of URLs. Anything else is kept as a single entry.
func parseGallery(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err != nil {
		return []string{raw}
	}

	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func splitImageList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func revalidate(ctx context.Context, logger *zap.Logger, r domain.Revalidator, paths ...string) {
	if err := r.Revalidate(ctx, paths...); err != nil {
		logger.Error("revalidate paths", zap.Strings("paths", paths), zap.Error(err))
	}
}
