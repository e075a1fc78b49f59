package server

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"

	"github.com/mlunde/raider-web/game"
)

// JoinData is a request to board: just a display name. The seat assignment
// is the server's call.
type JoinData struct {
	Name string `json:"name"`
}

// HelmData sets the ship's desired heading in radians.
type HelmData struct {
	Dir float64 `json:"dir"`
}

// ImpulseData sets the impulse throttle, 0 to 1.
type ImpulseData struct {
	Level float64 `json:"level"`
}

// FireData pulls a trigger by weapon name.
type FireData struct {
	Weapon string `json:"weapon"` // "phaser" or "torpedo"
}

// handleMessage routes one client message to its handler.
func (c *Client) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case MsgTypeJoin:
		c.handleJoin(msg.Data)
	case MsgTypeHelm:
		c.handleHelm(msg.Data)
	case MsgTypeImpulse:
		c.handleImpulse(msg.Data)
	case MsgTypeFire:
		c.handleFire(msg.Data)
	default:
		c.sendError(fmt.Sprintf("unknown message type %q", msg.Type))
	}
}

// handleJoin seats the client. The first joiner takes the helm; everyone
// after that watches until the chair empties.
func (c *Client) handleJoin(data json.RawMessage) {
	var join JoinData
	if err := json.Unmarshal(data, &join); err != nil {
		c.sendError("invalid join data")
		return
	}

	name := sanitizeName(join.Name)
	if name == "" {
		name = fmt.Sprintf("Observer%d", c.ID)
	}
	c.Name = name

	c.server.stateMu.Lock()
	pilot := c.server.pilotID == -1
	if pilot {
		c.server.pilotID = c.ID
	}
	sector := c.server.sector.Name
	c.server.stateMu.Unlock()

	c.server.log.Info("client joined",
		zap.Int("client", c.ID),
		zap.String("name", name),
		zap.Bool("pilot", pilot),
	)

	c.send <- ServerMessage{Type: MsgTypeJoined, Data: map[string]interface{}{
		"id":     c.ID,
		"name":   name,
		"pilot":  pilot,
		"sector": sector,
	}}
}

// handleHelm sets the heading the ship will swing toward. Pilot only.
func (c *Client) handleHelm(data json.RawMessage) {
	var helm HelmData
	if err := json.Unmarshal(data, &helm); err != nil {
		return
	}

	c.server.stateMu.Lock()
	defer c.server.stateMu.Unlock()
	if c.server.pilotID != c.ID || c.server.world.GameOver {
		return
	}
	c.server.world.Ship.HeadingSet = game.NormalizeAngle(helm.Dir)
}

// handleImpulse sets the throttle. Pilot only.
func (c *Client) handleImpulse(data json.RawMessage) {
	var imp ImpulseData
	if err := json.Unmarshal(data, &imp); err != nil {
		return
	}
	level := imp.Level
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}

	c.server.stateMu.Lock()
	defer c.server.stateMu.Unlock()
	if c.server.pilotID != c.ID || c.server.world.GameOver {
		return
	}
	c.server.ship.Impulse = level
}

// handleFire pulls the named trigger. Pilot only; a dry rack or an empty
// battery fails silently, the client sees the result in the next frame.
func (c *Client) handleFire(data json.RawMessage) {
	var fire FireData
	if err := json.Unmarshal(data, &fire); err != nil {
		return
	}

	c.server.stateMu.Lock()
	defer c.server.stateMu.Unlock()
	if c.server.pilotID != c.ID || c.server.world.GameOver {
		return
	}

	switch fire.Weapon {
	case "phaser":
		c.server.firePhasers()
	case "torpedo":
		c.server.fireTorpedo()
	}
}

// sendError queues an error message without blocking the read pump.
func (c *Client) sendError(text string) {
	select {
	case c.send <- ServerMessage{Type: MsgTypeError, Data: text}:
	default:
	}
}

// sanitizeName strips a display name down to a short alphanumeric string and
// escapes whatever survives.
func sanitizeName(name string) string {
	const maxNameLength = 20
	if len(name) > maxNameLength {
		name = name[:maxNameLength]
	}
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, name)
	return html.EscapeString(cleaned)
}
