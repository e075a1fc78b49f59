package server

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/mlunde/raider-web/game"
	"github.com/mlunde/raider-web/klingon"
)

// Message types
const (
	MsgTypeJoin    = "join"
	MsgTypeJoined  = "joined"
	MsgTypeHelm    = "helm"
	MsgTypeImpulse = "impulse"
	MsgTypeFire    = "fire"
	MsgTypeUpdate  = "update"
	MsgTypeEvent   = "event"
	MsgTypeError   = "error"
)

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ServerMessage represents a message from server to client
type ServerMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Client represents a connected viewer or pilot
type Client struct {
	ID     int
	Name   string
	conn   *websocket.Conn
	send   chan ServerMessage
	server *Server
}

// Server manages the simulation and client connections. The canonical world
// snapshot lives here; every tick replaces it through the raider engine and
// the driver-side collaborators. Two locks keep the tick loop and the fanout
// independent: mu guards the client set, stateMu guards the simulation.
type Server struct {
	mu         sync.RWMutex // clients
	stateMu    sync.RWMutex // world, ship, projectiles, counters, pilot
	log        *zap.Logger
	cfg        Config
	clients    map[int]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan ServerMessage
	done       chan struct{}
	upgrader   websocket.Upgrader

	engine *klingon.Engine
	rng    *rand.Rand
	sector Sector

	world       game.World
	ship        ShipSystems
	projectiles []Projectile

	frame          int64
	tickCount      int
	ticksPerSecond int
	wave           int
	lastTick       time.Time

	nextID  int
	pilotID int // client at the helm, -1 when the chair is empty
}

// NewServer builds a game server from config: loads the sector, seeds the
// generator, rolls the starting roster, and places the ship.
func NewServer(cfg Config, logger *zap.Logger) (*Server, error) {
	sec, err := LoadSector(cfg.Game.ScenarioPath, cfg.Game.Sector)
	if err != nil {
		return nil, err
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Server{
		log:        logger,
		cfg:        cfg,
		clients:    make(map[int]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan ServerMessage, 256),
		done:       make(chan struct{}),
		engine:     klingon.NewEngine(rng),
		rng:        rng,
		sector:     sec,
		pilotID:    -1,
	}
	s.upgrader = websocket.Upgrader{
		CheckOrigin:       s.checkOrigin,
		EnableCompression: true,
	}

	tick := cfg.TickInterval()
	s.ticksPerSecond = int(time.Second / tick)
	if s.ticksPerSecond < 1 {
		s.ticksPerSecond = 1
	}

	s.world = game.World{
		Klingons: s.rollRoster(sec),
		Ship:     s.placeShip(sec),
		Bases:    sec.WorldBases(),
	}
	s.ship = NewShipSystems()
	s.wave = 1

	s.log.Info("sector ready",
		zap.String("sector", sec.Name),
		zap.Int("raiders", len(s.world.Klingons)),
		zap.Int("bases", len(s.world.Bases)),
		zap.Int64("seed", seed),
	)
	return s, nil
}

// rollRoster produces the opening raider roster, honoring a sector's raider
// count when it differs from the default.
func (s *Server) rollRoster(sec Sector) []game.Klingon {
	roster := s.engine.Initialize()
	if sec.Raiders > 0 {
		for len(roster) > sec.Raiders {
			roster = roster[:len(roster)-1]
		}
		for len(roster) < sec.Raiders {
			roster = append(roster, klingon.Spawn(
				s.rng.Float64()*game.SectorWidth,
				s.rng.Float64()*game.SectorHeight,
			))
		}
	}
	return roster
}

func (s *Server) placeShip(sec Sector) game.Ship {
	at := sec.Ship
	if at == (Point{}) {
		at = Point{X: game.SectorWidth / 2, Y: game.SectorHeight / 2}
	}
	return game.Ship{Pos: game.Vec2{X: at.X, Y: at.Y}}
}

// checkOrigin allows same-origin and localhost connections.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// No origin header - could be a non-browser client
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		s.log.Warn("invalid origin URL", zap.String("origin", origin))
		return false
	}

	if r.Host == originURL.Host {
		return true
	}
	if strings.HasPrefix(originURL.Host, "localhost:") ||
		strings.HasPrefix(originURL.Host, "127.0.0.1:") ||
		originURL.Host == "localhost" ||
		originURL.Host == "127.0.0.1" {
		return true
	}

	s.log.Warn("rejected websocket origin", zap.String("origin", origin))
	return false
}

// Run starts the game loop and handles client lifecycle events.
func (s *Server) Run() {
	go s.gameLoop()

	for {
		select {
		case <-s.done:
			return

		case client := <-s.register:
			s.mu.Lock()
			s.clients[client.ID] = client
			s.mu.Unlock()
			s.log.Info("client connected", zap.Int("client", client.ID))

		case client := <-s.unregister:
			s.mu.Lock()
			if _, ok := s.clients[client.ID]; ok {
				delete(s.clients, client.ID)
				close(client.send)
				s.stateMu.Lock()
				if s.pilotID == client.ID {
					// The helm is empty; let the ship drift until
					// someone else takes it.
					s.pilotID = -1
					s.ship.Impulse = 0
				}
				s.stateMu.Unlock()
			}
			s.mu.Unlock()
			s.log.Info("client disconnected", zap.Int("client", client.ID))

		case message := <-s.broadcast:
			s.mu.RLock()
			for _, client := range s.clients {
				select {
				case client.send <- message:
				default:
					s.log.Warn("client send buffer full, dropping message",
						zap.Int("client", client.ID))
				}
			}
			s.mu.RUnlock()
		}
	}
}

// gameLoop drives the simulation at the configured tick rate.
func (s *Server) gameLoop() {
	ticker := time.NewTicker(s.cfg.TickInterval())
	defer ticker.Stop()

	s.stateMu.Lock()
	s.lastTick = time.Now()
	s.stateMu.Unlock()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.updateGame()
			s.sendGameState()
		}
	}
}

// Shutdown stops the game loop and the client lifecycle loop. Connections
// drain on their own when the process exits.
func (s *Server) Shutdown() {
	close(s.done)
}

// sendGameState broadcasts one state frame. The payload is marshalled while
// the lock is held so later ticks cannot touch the slices mid-encode.
func (s *Server) sendGameState() {
	s.stateMu.RLock()
	update := struct {
		Frame       int64        `json:"frame"`
		Wave        int          `json:"wave"`
		World       game.World   `json:"world"`
		Systems     ShipSystems  `json:"systems"`
		Projectiles []Projectile `json:"projectiles"`
	}{
		Frame:       s.frame,
		Wave:        s.wave,
		World:       s.world,
		Systems:     s.ship,
		Projectiles: s.projectiles,
	}
	payload, err := json.Marshal(update)
	s.stateMu.RUnlock()
	if err != nil {
		s.log.Error("marshal state frame", zap.Error(err))
		return
	}

	s.broadcast <- ServerMessage{Type: MsgTypeUpdate, Data: json.RawMessage(payload)}
}

// sendEvent broadcasts a transient game event for the client to narrate or
// animate.
func (s *Server) sendEvent(kind string, fields map[string]interface{}) {
	data := map[string]interface{}{"kind": kind}
	for k, v := range fields {
		data[k] = v
	}
	s.broadcast <- ServerMessage{Type: MsgTypeEvent, Data: data}
}

// HandleWebSocket upgrades an HTTP request into a game connection.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade", zap.Error(err))
		return
	}

	s.mu.Lock()
	clientID := s.nextID
	s.nextID++
	s.mu.Unlock()

	client := &Client{
		ID:     clientID,
		conn:   conn,
		send:   make(chan ServerMessage, 256),
		server: s,
	}

	s.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump handles incoming messages from the client
func (c *Client) readPump() {
	defer func() {
		c.server.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.server.log.Warn("websocket read", zap.Int("client", c.ID), zap.Error(err))
			}
			break
		}
		c.handleMessage(msg)
	}
}

// writePump sends messages to the client
func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
