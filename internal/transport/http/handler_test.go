package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tictactoe/internal/service"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc, err := service.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { svc.Close() })
	return NewFiberApp(svc, true)
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	return resp, raw
}

func decodeGame(t *testing.T, raw []byte) GameResponse {
	t.Helper()
	var g GameResponse
	if err := json.Unmarshal(raw, &g); err != nil {
		t.Fatalf("decoding %s: %v", raw, err)
	}
	return g
}

func decodeError(t *testing.T, raw []byte) ErrorResponse {
	t.Helper()
	var e ErrorResponse
	if err := json.Unmarshal(raw, &e); err != nil {
		t.Fatalf("decoding %s: %v", raw, err)
	}
	return e
}

func createHumanGame(t *testing.T, app *fiber.App) GameResponse {
	t.Helper()
	resp, raw := doJSON(t, app, "POST", "/api/v1/games", `{"x":{"type":1},"o":{"type":1}}`)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create game: status %d, body %s", resp.StatusCode, raw)
	}
	return decodeGame(t, raw)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	resp, raw := doJSON(t, app, "GET", "/health", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" || body["storage"] != "disabled" {
		t.Errorf("unexpected health body: %v", body)
	}
}

func TestCreateAndPlayGame(t *testing.T) {
	app := newTestApp(t)
	created := createHumanGame(t, app)
	if created.Turn != "X" || created.State != "ongoing" || created.Grid != ".../.../..." {
		t.Fatalf("unexpected created game: %+v", created)
	}

	resp, raw := doJSON(t, app, "POST", "/api/v1/games/"+created.GameID+"/moves", `{"move":4}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("move: status %d, body %s", resp.StatusCode, raw)
	}
	g := decodeGame(t, raw)
	if g.Grid != ".../.X./..." || g.Turn != "O" {
		t.Errorf("after move: %+v", g)
	}
	if g.LastMove == nil || g.LastMove.Move != 4 || g.LastMove.Player != "X" {
		t.Errorf("last move: %+v", g.LastMove)
	}

	// Occupied cell is rejected with a stable code.
	resp, raw = doJSON(t, app, "POST", "/api/v1/games/"+created.GameID+"/moves", `{"move":4}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("occupied move: status %d", resp.StatusCode)
	}
	if e := decodeError(t, raw); e.Code != ErrInvalidMove {
		t.Errorf("occupied move code = %q, want %q", e.Code, ErrInvalidMove)
	}
}

func TestComputerRespondsToHumanMove(t *testing.T) {
	app := newTestApp(t)
	resp, raw := doJSON(t, app, "POST", "/api/v1/games",
		`{"x":{"type":1},"o":{"type":2,"algorithm":"alphabeta","heuristic":"h2"}}`)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create: status %d, body %s", resp.StatusCode, raw)
	}
	created := decodeGame(t, raw)

	resp, raw = doJSON(t, app, "POST", "/api/v1/games/"+created.GameID+"/moves", `{"move":0}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("move: status %d, body %s", resp.StatusCode, raw)
	}
	g := decodeGame(t, raw)
	if len(g.Moves) != 2 {
		t.Fatalf("moves = %v, want human move plus computer reply", g.Moves)
	}
	if g.Turn != "X" {
		t.Errorf("turn = %q, want X after computer reply", g.Turn)
	}
	if g.LastMove == nil || g.LastMove.Player != "O" || g.LastMove.Nodes == 0 {
		t.Errorf("computer reply metadata: %+v", g.LastMove)
	}
}

func TestMoveValidation(t *testing.T) {
	app := newTestApp(t)
	created := createHumanGame(t, app)

	// Missing move field.
	resp, raw := doJSON(t, app, "POST", "/api/v1/games/"+created.GameID+"/moves", `{}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("missing move: status %d", resp.StatusCode)
	}
	if e := decodeError(t, raw); e.Code != ErrInvalidRequest {
		t.Errorf("missing move code = %q, want %q", e.Code, ErrInvalidRequest)
	}

	// Out-of-range index.
	resp, raw = doJSON(t, app, "POST", "/api/v1/games/"+created.GameID+"/moves", `{"move":9}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("move 9: status %d", resp.StatusCode)
	}
	if e := decodeError(t, raw); e.Code != ErrInvalidRequest {
		t.Errorf("move 9 code = %q, want %q", e.Code, ErrInvalidRequest)
	}

	// Malformed JSON.
	resp, raw = doJSON(t, app, "POST", "/api/v1/games/"+created.GameID+"/moves", `{"move":`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("malformed body: status %d", resp.StatusCode)
	}
	if e := decodeError(t, raw); e.Code != ErrInvalidRequest {
		t.Errorf("malformed body code = %q, want %q", e.Code, ErrInvalidRequest)
	}

	// Unknown game.
	resp, raw = doJSON(t, app, "POST", "/api/v1/games/nope/moves", `{"move":0}`)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("unknown game: status %d", resp.StatusCode)
	}
	if e := decodeError(t, raw); e.Code != ErrGameNotFound {
		t.Errorf("unknown game code = %q, want %q", e.Code, ErrGameNotFound)
	}
}

func TestContentTypeRejected(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest("POST", "/api/v1/games", strings.NewReader("x=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnsupportedMediaType {
		t.Fatalf("status %d, want 415", resp.StatusCode)
	}
}

func TestUndoBoardAndDelete(t *testing.T) {
	app := newTestApp(t)
	created := createHumanGame(t, app)
	gameID := created.GameID

	doJSON(t, app, "POST", "/api/v1/games/"+gameID+"/moves", `{"move":0}`)
	doJSON(t, app, "POST", "/api/v1/games/"+gameID+"/moves", `{"move":4}`)

	resp, raw := doJSON(t, app, "POST", "/api/v1/games/"+gameID+"/undo", `{"count":1}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("undo: status %d, body %s", resp.StatusCode, raw)
	}
	if g := decodeGame(t, raw); g.Grid != "X../.../..." || g.Turn != "O" {
		t.Errorf("after undo: %+v", g)
	}

	resp, raw = doJSON(t, app, "GET", "/api/v1/games/"+gameID+"/board", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("board: status %d", resp.StatusCode)
	}
	var b BoardResponse
	if err := json.Unmarshal(raw, &b); err != nil {
		t.Fatal(err)
	}
	if b.Grid != "X../.../..." || !strings.Contains(b.Board, "X |") {
		t.Errorf("board response: %+v", b)
	}

	resp, raw = doJSON(t, app, "GET", "/api/v1/games/"+gameID+"/legal-moves", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("legal moves: status %d", resp.StatusCode)
	}
	var lm LegalMovesResponse
	if err := json.Unmarshal(raw, &lm); err != nil {
		t.Fatal(err)
	}
	if len(lm.Moves) != 8 || lm.Moves[0] != 1 {
		t.Errorf("legal moves: %+v", lm)
	}

	resp, _ = doJSON(t, app, "DELETE", "/api/v1/games/"+gameID, "")
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("delete: status %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, app, "DELETE", "/api/v1/games/"+gameID, "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("double delete: status %d", resp.StatusCode)
	}
}

func TestAnalysisEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, "POST", "/api/v1/analysis", `{"grid":"XX./OO./..."}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("analysis: status %d, body %s", resp.StatusCode, raw)
	}
	var a AnalysisResponse
	if err := json.Unmarshal(raw, &a); err != nil {
		t.Fatal(err)
	}
	if len(a.Runs) != 4 {
		t.Fatalf("got %d runs, want 4", len(a.Runs))
	}
	for _, r := range a.Runs {
		if r.BestMove != 2 || r.Value != 1 {
			t.Errorf("run %s/%s: move %d value %d, want 2/1", r.Algorithm, r.Heuristic, r.BestMove, r.Value)
		}
	}
	if !strings.Contains(a.Report, "reduction") {
		t.Errorf("report missing pruning comparison:\n%s", a.Report)
	}

	// Terminal position cannot be analyzed.
	resp, raw = doJSON(t, app, "POST", "/api/v1/analysis", `{"grid":"XXX/OO./..."}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("terminal analysis: status %d, body %s", resp.StatusCode, raw)
	}

	// History requires storage.
	resp, raw = doJSON(t, app, "GET", "/api/v1/analysis", "")
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("history without storage: status %d, body %s", resp.StatusCode, raw)
	}
	if e := decodeError(t, raw); e.Code != ErrStorageDisabled {
		t.Errorf("history code = %q, want %q", e.Code, ErrStorageDisabled)
	}
}
