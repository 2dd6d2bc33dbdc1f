package plan

import (
	"strings"

	"github.com/storefront-qa/plangen/pkg/results"
)

// The generators below map a test's name (and category) to human-readable
// plan fields. Each is an ordered rule list evaluated top to bottom; the
// first matching rule wins, so rule order is part of the contract.

// nameRule matches when every keyword in all appears in the lower-cased
// name and, if any is non-empty, at least one of its keywords does too.
type nameRule struct {
	all  []string
	any  []string
	text string
}

func (r nameRule) matches(lower string) bool {
	for _, kw := range r.all {
		if !strings.Contains(lower, kw) {
			return false
		}
	}
	if len(r.any) == 0 {
		return true
	}
	for _, kw := range r.any {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func firstMatch(rules []nameRule, lower string) (string, bool) {
	for _, r := range rules {
		if r.matches(lower) {
			return r.text, true
		}
	}
	return "", false
}

// StripPriority removes the P0:/P1:/P2: label prefixes from a test name.
func StripPriority(name string) string {
	for _, p := range []string{"P0: ", "P1: ", "P2: "} {
		name = strings.ReplaceAll(name, p, "")
	}
	return name
}

const defaultSteps = "1. Setup test environment\n2. Execute test actions\n3. Verify expected results"

var stepRules = []nameRule{
	{all: []string{"add", "product", "cart"}, text: "1. Navigate to product detail page\n2. Click 'Add to Cart' button\n3. Verify product is added to cart"},
	{all: []string{"update", "quantity"}, text: "1. Add product to cart\n2. Navigate to cart page\n3. Update product quantity\n4. Verify quantity is updated"},
	{all: []string{"remove", "product"}, text: "1. Add product to cart\n2. Navigate to cart page\n3. Click remove button\n4. Verify product is removed"},
	{all: []string{"checkout"}, text: "1. Add products to cart\n2. Navigate to checkout\n3. Fill shipping information\n4. Fill payment information\n5. Complete order\n6. Verify order confirmation"},
	{all: []string{"api", "crud"}, text: "1. Send POST request to create resource\n2. Send GET request to retrieve resource\n3. Send PUT request to update resource\n4. Send DELETE request to remove resource"},
	{all: []string{"api"}, text: "1. Send API request\n2. Verify response status code\n3. Validate response data"},
	{all: []string{"search"}, text: "1. Navigate to search page\n2. Enter search keyword\n3. Submit search\n4. Verify search results"},
	{all: []string{"filter"}, text: "1. Navigate to products page\n2. Select filter criteria\n3. Apply filter\n4. Verify filtered results"},
	{all: []string{"persist"}, text: "1. Add items to cart\n2. Refresh page\n3. Verify cart items are still present"},
}

// steps derives a numbered procedure from the test name.
func steps(name string) string {
	lower := strings.ToLower(StripPriority(name))
	if text, ok := firstMatch(stepRules, lower); ok {
		return text
	}
	return defaultSteps
}

// dataRule keys a sample payload on a category substring.
type dataRule struct {
	category string
	text     string
}

var dataRules = []dataRule{
	{"product", "Product ID: SNOW-123\nProduct Name: Alpine Carver\nPrice: $599.99"},
	{"cart", "Product ID: SNOW-123\nQuantity: 2\nPrice: $599.99"},
	{"checkout", "Cart Items: 2 products\nSubtotal: $1,199.98\nShipping: $25.00\nTax: $98.00\nTotal: $1,322.98"},
	{"api", "Endpoint: /api/v1/products\nMethod: GET\nHeaders: {\"Content-Type\": \"application/json\"}"},
}

// testData returns a fixed sample payload for the category, or "" for
// categories with no canned data.
func testData(category string) string {
	for _, r := range dataRules {
		if strings.Contains(category, r.category) {
			return r.text
		}
	}
	return ""
}

const defaultExpected = "Test completes successfully with expected outcome"

var expectedRules = []nameRule{
	{all: []string{"api", "return"}, text: "API returns correct data with 200 status code"},
	{all: []string{"api", "crud"}, text: "API supports all CRUD operations successfully"},
	{all: []string{"api", "error"}, text: "API returns appropriate error codes and messages"},
	{all: []string{"api"}, text: "API responds with expected data"},
	{all: []string{"product"}, any: []string{"display", "show"}, text: "Products are displayed correctly with all details"},
	{all: []string{"product", "filter"}, text: "Products are filtered according to selected criteria"},
	{all: []string{"product", "search"}, text: "Search results display relevant products"},
	{all: []string{"product", "navigate"}, text: "Navigation to product categories works correctly"},
	{all: []string{"cart", "add"}, text: "Product is added to cart successfully"},
	{all: []string{"cart"}, any: []string{"update", "quantity"}, text: "Product quantity is updated correctly"},
	{all: []string{"cart", "remove"}, text: "Product is removed from cart successfully"},
	{all: []string{"cart", "persist"}, text: "Cart items persist after page refresh"},
	{all: []string{"cart", "calculation"}, text: "Cart totals are calculated correctly"},
	{all: []string{"checkout", "complete"}, text: "Checkout process completes successfully"},
	{all: []string{"checkout", "order", "summary"}, text: "Order summary displays correct information"},
	{all: []string{"checkout", "confirmation"}, text: "Order confirmation page shows correct order details"},
	{all: []string{"checkout"}, any: []string{"reject", "invalid"}, text: "System rejects invalid payment information with appropriate error message"},
}

// expected derives the expected-result statement from the test name.
// A name phrased as "... should <behavior>" reports the behavior directly;
// otherwise the keyword rules apply.
func expected(name string) string {
	lower := strings.ToLower(StripPriority(name))
	if strings.Contains(lower, "should ") {
		_, rest, _ := strings.Cut(lower, "should ")
		return "System " + strings.TrimSpace(rest)
	}
	if text, ok := firstMatch(expectedRules, lower); ok {
		return text
	}
	return defaultExpected
}

var negativeKeywords = []string{"not", "invalid", "error", "fail", "reject", "empty"}

// classify labels a test Positive or Negative from its name.
func classify(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range negativeKeywords {
		if strings.Contains(lower, kw) {
			return "Negative"
		}
	}
	return "Positive"
}

// actualResult summarizes the test outcome. Failed tests with a failure
// message get a categorized sentence for known error classes; anything
// else falls back to the sanitized first line of the raw message.
func actualResult(rec results.TestRecord) string {
	if rec.Status == results.StatusPassed {
		return "Test passed successfully"
	}
	if len(rec.FailureMessages) > 0 {
		failure := rec.FailureMessages[0]
		switch {
		case strings.Contains(failure, "TypeError"):
			// a TypeError claims the message: an unrecognized one falls
			// through to the raw first line, never to the classes below
			if strings.Contains(failure, "Cannot read properties") {
				return "Test failed: Cannot read properties of undefined object"
			}
			if strings.Contains(failure, "Cannot set properties") {
				return "Test failed: Cannot set properties of undefined object"
			}
		case strings.Contains(failure, "AssertionError"):
			return "Test failed: Assertion error - expected value not matching actual"
		case strings.Contains(failure, "Timeout"):
			return "Test failed: Operation timed out"
		}
		firstLine, _, _ := strings.Cut(failure, "\n")
		return "Test failed: " + CleanCellText(firstLine)
	}
	return "Test failed"
}
