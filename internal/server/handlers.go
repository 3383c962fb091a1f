package server

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// maxPerftDepth bounds the work a single request can ask for.
const maxPerftDepth = 5

type fenRequest struct {
	FEN string `json:"fen"`
}

type moveRequest struct {
	Move string `json:"move"`
}

// MoveView is one legal move in a moves response.
type MoveView struct {
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
	Special   string `json:"special,omitempty"`
}

// decodeBody unmarshals a JSON request body into v. An empty body leaves
// v unchanged.
func decodeBody(c *fiber.Ctx, v interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return badRequest("invalid JSON body: " + err.Error())
	}
	return nil
}

func gameView(id string, snap *engine.Snapshot) *output.JSONGame {
	jg := output.GameToJSON(snap)
	jg.ID = id
	return jg
}

func moveViews(moves []chess.Move) []MoveView {
	views := make([]MoveView, len(moves))
	for i, m := range moves {
		views[i] = MoveView{
			UCI:     m.String(),
			From:    m.From.String(),
			To:      m.To.String(),
			Special: m.Special.Kind.String(),
		}
		if m.IsPromotion() {
			views[i].Promotion = m.Promotion.String()
		}
	}
	return views
}

func (s *Server) listGames(c *fiber.Ctx) error {
	ids, err := s.games.IDs()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"games": ids})
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req fenRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	id, snap, err := s.games.Create(req.FEN)
	if err != nil {
		return err
	}
	if s.cfg.Verbosity > 1 {
		s.log.Printf("created game %s", id)
	}
	return c.Status(fiber.StatusCreated).JSON(gameView(id, &snap))
}

func (s *Server) getGame(c *fiber.Ctx) error {
	id := c.Params("id")
	snap, err := s.games.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(gameView(id, &snap))
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	if err := s.games.Delete(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) getFEN(c *fiber.Ctx) error {
	snap, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fenRequest{FEN: snap.FEN()})
}

func (s *Server) loadFEN(c *fiber.Ctx) error {
	var req fenRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if req.FEN == "" {
		return badRequest("missing fen")
	}
	id := c.Params("id")
	snap, err := s.games.ImportFEN(id, req.FEN)
	if err != nil {
		return err
	}
	return c.JSON(gameView(id, &snap))
}

func (s *Server) legalMoves(c *fiber.Ctx) error {
	moves, err := s.games.LegalMoves(c.Params("id"), c.Query("square"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"moves": moveViews(moves)})
}

func (s *Server) makeMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if req.Move == "" {
		return badRequest("missing move")
	}
	id := c.Params("id")
	snap, err := s.games.Move(id, req.Move)
	if err != nil {
		return err
	}
	return c.JSON(gameView(id, &snap))
}

func (s *Server) undo(c *fiber.Ctx) error {
	id := c.Params("id")
	snap, err := s.games.Undo(id)
	if err != nil {
		return err
	}
	return c.JSON(gameView(id, &snap))
}

func (s *Server) reset(c *fiber.Ctx) error {
	id := c.Params("id")
	snap, err := s.games.Reset(id)
	if err != nil {
		return err
	}
	return c.JSON(gameView(id, &snap))
}

// analysis replays the game's history and reports its move statistics.
func (s *Server) analysis(c *fiber.Ctx) error {
	snap, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}
	a, err := processing.AnalyzeGame(&snap)
	if err != nil {
		return err
	}
	return c.JSON(a)
}

// perft counts the move tree below the game's current position, split
// across the worker pool. The count is abandoned after the configured
// perft timeout.
func (s *Server) perft(c *fiber.Ctx) error {
	depth := c.QueryInt("depth", 3)
	if depth < 1 || depth > maxPerftDepth {
		return badRequest("depth must be between 1 and " + strconv.Itoa(maxPerftDepth))
	}
	snap, err := s.games.Get(c.Params("id"))
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	if limit := s.cfg.Server.PerftTimeout; limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, limit)
		defer cancel()
	}
	results, err := worker.DivideContext(ctx, snap.Position(), depth, worker.WithWorkers(s.cfg.Perft.Workers))
	if err != nil {
		return err
	}
	divide := make(map[string]uint64, len(results))
	for _, r := range results {
		divide[r.Move.String()] = r.Nodes
	}
	return c.JSON(fiber.Map{
		"fen":    snap.FEN(),
		"depth":  depth,
		"nodes":  worker.TotalNodes(results),
		"divide": divide,
	})
}
