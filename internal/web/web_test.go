package web_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apimw "github.com/mcoot/drophunt/internal/api/middleware"
	"github.com/mcoot/drophunt/internal/factory"
	"github.com/mcoot/drophunt/internal/model"
	"github.com/mcoot/drophunt/internal/services/catalog"
	"github.com/mcoot/drophunt/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
	cookies *cookieJar
}

func toteRecord() model.CatalogRecord {
	rating := 4.8
	eco := true
	return model.CatalogRecord{
		ID:          "prod_demo",
		Title:       "Organic Cotton Tote Bag",
		Vendor:      "EcoStyle Co",
		Price:       "$32.00",
		Image:       "https://example.com/tote.jpg",
		ProductType: "Accessories",
		Rating:      &rating,
		EcoFriendly: &eco,
		Location:    "Los Angeles, CA",
	}
}

// newWebTestServer creates a test server whose only product is the tote bag
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()
	return newWebTestServerWithCatalog(t, catalog.NewStatic(toteRecord()))
}

func newWebTestServerWithCatalog(t *testing.T, provider catalog.Provider) *webTestServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := factory.NewTestAppWithCatalog(provider)

	router := web.NewRouter(web.RouterConfig{
		Logger:        logger,
		Clock:         app.MockClock,
		AuthService:   app.AuthService,
		PuzzleManager: app.PuzzleManager,
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	// Add cookies from jar
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	// Extract Set-Cookie headers into jar
	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

// post makes a POST request with form data
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// page loads the puzzle page and parses it
func (ts *webTestServer) page() *goquery.Document {
	ts.t.Helper()
	rr := ts.get("/")
	require.Equal(ts.t, http.StatusOK, rr.Code)
	return parseHTML(rr.Body)
}

// postAndFollow submits a form, expects the redirect back to the puzzle and
// loads it
func (ts *webTestServer) postAndFollow(path string, form url.Values) *goquery.Document {
	ts.t.Helper()
	rr := ts.post(path, form)
	require.Equal(ts.t, http.StatusSeeOther, rr.Code)
	require.Equal(ts.t, "/", rr.Header().Get("Location"))
	return ts.page()
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			// Cookie being deleted
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// session returns the session token, or "" if none is set
func (j *cookieJar) session() string {
	if c, ok := j.cookies[apimw.SessionCookie]; ok {
		return c.Value
	}
	return ""
}

func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	assert.Positive(t, doc.Find(selector).Length(), "expected element %q", selector)
}

func assertNoElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	assert.Zero(t, doc.Find(selector).Length(), "unexpected element %q", selector)
}

func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	assert.Contains(t, doc.Find(selector).Text(), text)
}

func status(doc *goquery.Document) string {
	s, _ := doc.Find("#puzzle").Attr("data-status")
	return s
}

// Test: First visit creates a guest player and shows today's first clue
func TestHomeCreatesGuestAndShowsPuzzle(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.page()

	require.NotEmpty(t, ts.cookies.session(), "expected a guest session cookie")
	assert.Equal(t, "ready", status(doc))
	seed, _ := doc.Find("#puzzle").Attr("data-seed")
	assert.Equal(t, "2024-3-15", seed)

	assert.Equal(t, 1, doc.Find("#clues li.clue").Length())
	assertContainsText(t, doc, "#clues li.clue", "This item belongs to the Accessories category")
	assertContainsText(t, doc, "#clues-revealed", "1 / 5")
	assertContainsText(t, doc, ".player-name", "Guest")
	assertContainsElement(t, doc, "#reveal-form")
	assertContainsElement(t, doc, `#guess-form input[name="product_id"][value="prod_demo"]`)
	assertNoElement(t, doc, "#solved")
}

// Test: A returning browser keeps its player
func TestHomeReusesSession(t *testing.T) {
	ts := newWebTestServer(t)

	ts.page()
	token := ts.cookies.session()
	ts.page()

	assert.Equal(t, token, ts.cookies.session())
}

// Test: Revealing a clue adds it to the list
func TestRevealAddsClue(t *testing.T) {
	ts := newWebTestServer(t)
	ts.page()

	doc := ts.postAndFollow("/reveal", url.Values{})

	assert.Equal(t, 2, doc.Find("#clues li.clue").Length())
	assertContainsText(t, doc, "#attempts", "1")
}

// Test: The reveal button goes away at the cap
func TestRevealStopsAtCap(t *testing.T) {
	ts := newWebTestServer(t)
	ts.page()

	var doc *goquery.Document
	for range 6 {
		doc = ts.postAndFollow("/reveal", url.Values{})
	}

	assert.Equal(t, 5, doc.Find("#clues li.clue").Length())
	assertContainsText(t, doc, "#attempts", "4")
	assertNoElement(t, doc, "#reveal-form")
}

// Test: A wrong guess flashes an error and keeps the game open
func TestWrongGuess(t *testing.T) {
	ts := newWebTestServer(t)
	ts.page()

	doc := ts.postAndFollow("/guess", url.Values{"product_id": {"prod_2"}})

	assertContainsText(t, doc, ".flash-error", "Not quite")
	assertContainsText(t, doc, "#attempts", "1")
	assert.Equal(t, "ready", status(doc))
}

// Test: An empty guess is rejected without counting an attempt
func TestEmptyGuess(t *testing.T) {
	ts := newWebTestServer(t)
	ts.page()

	doc := ts.postAndFollow("/guess", url.Values{"product_id": {"  "}})

	assertContainsText(t, doc, ".flash-error", "Pick a product")
	assertContainsText(t, doc, "#attempts", "0")
}

// Test: The flash is shown once
func TestFlashShownOnce(t *testing.T) {
	ts := newWebTestServer(t)
	ts.page()

	ts.postAndFollow("/guess", url.Values{"product_id": {"prod_2"}})
	doc := ts.page()

	assertNoElement(t, doc, ".flash")
}

// Test: A correct guess shows the product, score and streak
func TestCorrectGuessShowsProduct(t *testing.T) {
	ts := newWebTestServer(t)
	ts.page()

	ts.postAndFollow("/reveal", url.Values{})
	ts.postAndFollow("/reveal", url.Values{})
	ts.app.MockClock.Advance(90 * time.Second)
	doc := ts.postAndFollow("/guess", url.Values{"product_id": {"prod_demo"}})

	assert.Equal(t, "won", status(doc))
	assertContainsText(t, doc, ".flash-success", "You found today's drop!")
	assertContainsText(t, doc, "#score", "791")
	assertContainsText(t, doc, "#product-title", "Organic Cotton Tote Bag")
	assertContainsText(t, doc, "#streak", "1")
	assertNoElement(t, doc, "#guess-form")
	assertNoElement(t, doc, "#reveal-form")
}

// Test: Once solved the day stays solved across a restart
func TestAlreadyPlayedAfterRestart(t *testing.T) {
	ts := newWebTestServer(t)
	ts.page()
	ts.postAndFollow("/guess", url.Values{"product_id": {"prod_demo"}})

	session, err := ts.app.AuthService.ValidateSession(ts.cookies.session())
	require.NoError(t, err)
	ts.app.PuzzleManager.Forget(session.PlayerID)

	doc := ts.page()
	assert.Equal(t, "already_played", status(doc))
	assertContainsElement(t, doc, "#already-played")
	assertContainsText(t, doc, "#product-title", "Organic Cotton Tote Bag")
	assertNoElement(t, doc, "#guess-form")
}

// Test: Reset clears the win and starts over
func TestResetStartsOver(t *testing.T) {
	ts := newWebTestServer(t)
	ts.page()
	ts.postAndFollow("/guess", url.Values{"product_id": {"prod_demo"}})

	doc := ts.postAndFollow("/reset", url.Values{})

	assertContainsText(t, doc, ".flash-info", "reset")
	assert.Equal(t, "ready", status(doc))
	assertNoElement(t, doc, "#stats")
	assertContainsElement(t, doc, "#guess-form")
}

// Test: An empty catalog shows the no-product notice
func TestNoProduct(t *testing.T) {
	ts := newWebTestServerWithCatalog(t, catalog.NewStatic())

	doc := ts.page()

	assert.Equal(t, "no_product", status(doc))
	assertContainsElement(t, doc, "#no-product")
	assertNoElement(t, doc, "#guess-form")
}

// Test: Naming a guest replaces the anonymous one
func TestCreateNamedGuest(t *testing.T) {
	ts := newWebTestServer(t)
	ts.page()
	anonymous := ts.cookies.session()

	doc := ts.postAndFollow("/auth/guest", url.Values{"display_name": {"Alice"}})

	assert.NotEqual(t, anonymous, ts.cookies.session())
	assertContainsText(t, doc, ".player-name", "Alice")
	assertContainsText(t, doc, ".flash-success", "Welcome, Alice!")
}

// Test: Logout drops the session and the next visit is a new guest
func TestLogout(t *testing.T) {
	ts := newWebTestServer(t)
	ts.page()
	token := ts.cookies.session()
	require.Equal(t, 1, ts.app.PuzzleManager.Active())

	rr := ts.post("/auth/logout", url.Values{})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Empty(t, ts.cookies.session())
	assert.Equal(t, 0, ts.app.PuzzleManager.Active())

	_, err := ts.app.AuthService.ValidateSession(token)
	require.Error(t, err)

	doc := ts.page()
	assert.NotEqual(t, token, ts.cookies.session())
	assertContainsText(t, doc, ".flash-info", "logged out")
}

// Test: The clue counter never passes a short clue list
func TestClueCounterStopsAtShortList(t *testing.T) {
	ts := newWebTestServerWithCatalog(t, catalog.NewStatic(model.CatalogRecord{ID: "prod_plain"}))
	ts.page()

	var doc *goquery.Document
	for range 4 {
		doc = ts.postAndFollow("/reveal", url.Values{})
	}

	assert.Equal(t, 3, doc.Find("#clues li.clue").Length())
	assertContainsText(t, doc, "#clues-revealed", "3 / 3")
	assertContainsText(t, doc, "#attempts", "4")
}

// Test: Text from the catalog is escaped
func TestCatalogTextIsEscaped(t *testing.T) {
	record := toteRecord()
	record.ProductType = "<script>alert(1)</script>"
	ts := newWebTestServerWithCatalog(t, catalog.NewStatic(record))

	rr := ts.get("/")

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

// Test: Unknown routes are not served by the puzzle page
func TestUnknownRoute(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/nope")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
