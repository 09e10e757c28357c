package main

import (
	"encoding/json"
	"time"

	orderedmap "github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/milk9111/firstperson/config"
	"github.com/milk9111/firstperson/controller"
	"github.com/milk9111/firstperson/ecs"
	"github.com/milk9111/firstperson/input"
	"github.com/milk9111/firstperson/physics"
)

const (
	ticksPerSecond = 20
	spawnHeight    = 2
	killY          = -30

	bodyWidth  = 0.8
	bodyHeight = 1.8
)

// character is everything the tick loop needs per connected player.
// Pending input is overwritten by newer movement axes, while jump and
// look deltas accumulate until the next tick consumes them.
type character struct {
	id   string
	ctrl *controller.Controller
	body *physics.Body
	conn *clientConn

	pending      input.Snapshot
	dyaw, dpitch float32
}

var characterComp = ecs.NewComponent[character]()

type joinRequest struct {
	id   string
	conn *clientConn
}

type clientInput struct {
	id  string
	msg inputMessage
}

// room owns the authoritative simulation. All entity state is touched
// only from the tick goroutine; the network side talks to it through
// buffered channels.
type room struct {
	log     *zap.SugaredLogger
	metrics *roomMetrics

	world  *physics.World
	ents   *ecs.World
	roster *orderedmap.OrderedMap[string, ecs.Entity]
	tuning config.Tuning

	joinCh   chan joinRequest
	leaveCh  chan string
	inputCh  chan clientInput
	retuneCh chan config.Tuning

	sched *ecs.Scheduler

	now  float64
	dt   float32
	tick uint64
}

func newRoom(tuning config.Tuning, log *zap.SugaredLogger) *room {
	world := physics.NewWorld()
	for _, box := range arenaBoxes() {
		world.AddBox(box)
	}
	r := &room{
		log:      log,
		metrics:  &roomMetrics{},
		world:    world,
		ents:     ecs.NewWorld(),
		roster:   orderedmap.NewOrderedMap[string, ecs.Entity](),
		tuning:   tuning,
		joinCh:   make(chan joinRequest, 16),
		leaveCh:  make(chan string, 64),
		inputCh:  make(chan clientInput, 256),
		retuneCh: make(chan config.Tuning, 4),
	}
	r.sched = ecs.NewScheduler(&physicsSystem{r: r}, &controlSystem{r: r})
	return r
}

// physicsSystem integrates every character's body so ground contact is
// current before the controllers run.
type physicsSystem struct {
	r *room
}

func (s *physicsSystem) Update(w *ecs.World) {
	ecs.ForEach(w, characterComp, func(_ ecs.Entity, c *character) {
		s.r.world.Step(c.body, s.r.dt)
	})
}

// controlSystem consumes each character's pending input and runs its
// movement controller for the tick.
type controlSystem struct {
	r *room
}

func (s *controlSystem) Update(w *ecs.World) {
	ecs.ForEach(w, characterComp, func(_ ecs.Entity, c *character) {
		c.ctrl.Rotate(c.dyaw, c.dpitch)
		c.dyaw, c.dpitch = 0, 0

		snap := c.pending
		c.pending.JumpPressed = false

		c.ctrl.Tick(s.r.now, s.r.dt, snap, c.body)

		if c.body.Pos.Y() < killY {
			c.body.Pos = mgl32.Vec3{0, spawnHeight, 0}
			c.body.Vel = mgl32.Vec3{}
		}
	})
}

func arenaBoxes() []cube.BBox {
	return []cube.BBox{
		cube.Box(-12, 0, -12, -6, 1, -6),
		cube.Box(6, 0, 6, 12, 1.5, 12),
		cube.Box(-3, 0, 8, 3, 2, 11),
	}
}

func (r *room) requestJoin(id string, conn *clientConn) {
	r.joinCh <- joinRequest{id: id, conn: conn}
}

func (r *room) requestLeave(id string) {
	r.leaveCh <- id
}

// onInput never blocks the read pump. A full channel drops the message
// so network bursts cannot stall the tick.
func (r *room) onInput(id string, msg inputMessage) {
	select {
	case r.inputCh <- clientInput{id: id, msg: msg}:
		r.metrics.incAccepted()
	default:
		r.metrics.incDiscarded()
	}
}

func (r *room) retune(t config.Tuning) {
	select {
	case r.retuneCh <- t:
	default:
	}
}

func (r *room) run() {
	dt := float32(1.0 / float64(ticksPerSecond))
	ticker := time.NewTicker(time.Second / ticksPerSecond)
	defer ticker.Stop()

	for range ticker.C {
		start := time.Now()
		r.drainMailbox()
		r.step(dt)
		r.broadcast()
		r.metrics.addTick(time.Since(start).Nanoseconds())
	}
}

func (r *room) drainMailbox() {
	for {
		select {
		case req := <-r.joinCh:
			r.join(req.id, req.conn)
		case id := <-r.leaveCh:
			r.leave(id)
		case in := <-r.inputCh:
			r.applyInput(in.id, in.msg)
		case t := <-r.retuneCh:
			r.tuning = t
			for el := r.roster.Front(); el != nil; el = el.Next() {
				if c, ok := ecs.Get(r.ents, el.Value, characterComp); ok {
					c.ctrl.Retune(t.Locomotion, t.Jump)
				}
			}
			r.log.Infow("tuning reloaded", "players", r.roster.Len())
		default:
			return
		}
	}
}

func (r *room) join(id string, conn *clientConn) {
	if ent, ok := r.roster.Get(id); ok {
		// Same player reconnecting replaces the old connection.
		if c, ok := ecs.Get(r.ents, ent, characterComp); ok {
			if c.conn != nil {
				c.conn.close()
			}
			c.conn = conn
			r.log.Infow("player reconnected", "player", id)
			return
		}
	}

	ent := r.ents.CreateEntity()
	ecs.Add(r.ents, ent, characterComp, character{
		id:   id,
		ctrl: controller.New(r.tuning.Locomotion, r.tuning.Jump),
		body: physics.NewBody(mgl32.Vec3{0, spawnHeight, 0}, bodyWidth, bodyHeight),
		conn: conn,
	})
	r.roster.Set(id, ent)
	r.metrics.players.Store(int64(r.roster.Len()))
	r.log.Infow("player joined", "player", id, "entity", ent, "players", r.roster.Len())
}

func (r *room) leave(id string) {
	ent, ok := r.roster.Get(id)
	if !ok {
		return
	}
	if c, ok := ecs.Get(r.ents, ent, characterComp); ok && c.conn != nil {
		c.conn.close()
	}
	r.ents.DestroyEntity(ent)
	r.roster.Delete(id)
	r.metrics.players.Store(int64(r.roster.Len()))
	r.log.Infow("player left", "player", id, "players", r.roster.Len())
}

func (r *room) applyInput(id string, msg inputMessage) {
	ent, ok := r.roster.Get(id)
	if !ok {
		return
	}
	c, ok := ecs.Get(r.ents, ent, characterComp)
	if !ok {
		return
	}
	c.pending.MoveX = msg.MoveX
	c.pending.MoveZ = msg.MoveZ
	c.pending.Sprint = msg.Sprint
	if msg.Jump {
		c.pending.JumpPressed = true
		c.pending.JumpPressedAt = r.now
	}
	c.dyaw += msg.DYaw
	c.dpitch += msg.DPitch
}

func (r *room) step(dt float32) {
	r.now += float64(dt)
	r.dt = dt
	r.tick++
	r.sched.Update(r.ents)
}

func (r *room) broadcast() {
	if r.roster.Len() == 0 {
		return
	}
	msg := stateMessage{Type: "state", Tick: r.tick}
	msg.Players = make([]playerState, 0, r.roster.Len())
	for el := r.roster.Front(); el != nil; el = el.Next() {
		c, ok := ecs.Get(r.ents, el.Value, characterComp)
		if !ok {
			continue
		}
		st := c.ctrl.State()
		msg.Players = append(msg.Players, playerState{
			ID:       c.id,
			Pos:      [3]float32{st.Pos.X(), st.Pos.Y(), st.Pos.Z()},
			Vel:      [3]float32{st.Vel.X(), st.Vel.Y(), st.Vel.Z()},
			Yaw:      st.Yaw,
			Pitch:    st.Pitch,
			OnGround: st.OnGround,
			Jumps:    st.JumpCount,
		})
	}

	b, err := json.Marshal(msg)
	if err != nil {
		r.log.Errorf("marshal state: %v", err)
		return
	}
	for el := r.roster.Front(); el != nil; el = el.Next() {
		if c, ok := ecs.Get(r.ents, el.Value, characterComp); ok && c.conn != nil {
			c.conn.enqueue(b)
		}
	}
}
