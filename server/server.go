package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/jnadimpalli/poker-touchstone/cards"
	"github.com/jnadimpalli/poker-touchstone/hands"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, implement proper origin checks
	},
}

// Server exposes the hand evaluator over REST and WebSocket.
type Server struct {
	log *zap.Logger
}

// NewServer creates a new evaluation server.
func NewServer(log *zap.Logger) *Server {
	return &Server{log: log}
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/api/evaluate", corsMiddleware(s.handleEvaluate))
	return mux
}

// Start begins serving on the given address.
func (s *Server) Start(addr string) error {
	s.log.Info("starting evaluation server", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.Handler())
}

// corsMiddleware adds CORS headers to all responses.
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// PlayerHand is one player's entry in an evaluation request, with hole
// cards in shorthand notation ("Ah", "10♠", ...).
type PlayerHand struct {
	ID   string   `json:"id"`
	Hole []string `json:"hole"`
}

// EvaluateRequest asks for a showdown evaluation of one or more players
// against five shared community cards.
type EvaluateRequest struct {
	Players   []PlayerHand `json:"players"`
	Community []string     `json:"community"`
}

// PlayerEvaluation is one player's best hand in an evaluation response.
type PlayerEvaluation struct {
	ID       string   `json:"id"`
	Rank     string   `json:"rank"`
	BestFive []string `json:"bestFive"`
	Score    int64    `json:"score"`
}

// EvaluateResponse carries every player's best hand plus the winner IDs.
type EvaluateResponse struct {
	Results []PlayerEvaluation `json:"results"`
	Winners []string           `json:"winners"`
}

// errorResponse is the error payload sent over the WebSocket.
type errorResponse struct {
	Error string `json:"error"`
}

// evaluate runs the core engine over a decoded request.
func evaluate(req EvaluateRequest) (EvaluateResponse, error) {
	community, err := cards.StackFromStrings(req.Community...)
	if err != nil {
		return EvaluateResponse{}, err
	}

	results := make([]hands.PlayerResult, 0, len(req.Players))
	evaluations := make([]PlayerEvaluation, 0, len(req.Players))
	for _, p := range req.Players {
		hole, err := cards.StackFromStrings(p.Hole...)
		if err != nil {
			return EvaluateResponse{}, err
		}

		result, err := hands.EvaluateBestHand(hole, community)
		if err != nil {
			return EvaluateResponse{}, err
		}

		results = append(results, hands.PlayerResult{PlayerID: p.ID, Result: result})

		bestFive := make([]string, len(result.BestFive))
		for i, c := range result.BestFive {
			bestFive[i] = c.String()
		}
		evaluations = append(evaluations, PlayerEvaluation{
			ID:       p.ID,
			Rank:     result.Rank.String(),
			BestFive: bestFive,
			Score:    result.Score,
		})
	}

	winners, err := hands.PickWinners(results)
	if err != nil {
		return EvaluateResponse{}, err
	}

	return EvaluateResponse{Results: evaluations, Winners: winners}, nil
}

// handleEvaluate serves POST /api/evaluate.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := evaluate(req)
	if err != nil {
		s.log.Warn("evaluation rejected", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// handleWebSocket upgrades the connection and serves one evaluation per
// incoming JSON frame.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	clientID := uuid.NewString()
	s.log.Info("client connected",
		zap.String("remote", r.RemoteAddr),
		zap.String("clientID", clientID),
	)

	client := &client{
		id:   clientID,
		conn: conn,
		send: make(chan []byte, 16),
	}

	go s.readPump(client)
	go s.writePump(client)
}

// client is one WebSocket connection.
type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// readPump reads evaluation requests from the WebSocket connection.
func (s *Server) readPump(c *client) {
	defer func() {
		close(c.send)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.log.Warn("websocket read error", zap.String("clientID", c.id), zap.Error(err))
			}
			return
		}

		var reply any
		var req EvaluateRequest
		if err := json.Unmarshal(message, &req); err != nil {
			reply = errorResponse{Error: "invalid request"}
		} else if resp, err := evaluate(req); err != nil {
			reply = errorResponse{Error: err.Error()}
		} else {
			reply = resp
		}

		payload, err := json.Marshal(reply)
		if err != nil {
			s.log.Error("marshal reply failed", zap.String("clientID", c.id), zap.Error(err))
			continue
		}
		c.send <- payload
	}
}

// writePump sends replies to the WebSocket connection.
func (s *Server) writePump(c *client) {
	defer c.conn.Close()

	for {
		message, ok := <-c.send
		if !ok {
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			s.log.Warn("websocket write error", zap.String("clientID", c.id), zap.Error(err))
			return
		}
	}
}
