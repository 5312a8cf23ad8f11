package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"sort"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/Flightx/pkg/datastructure"
	"go.uber.org/zap"
)

// User. one websocket session. every text frame is a route query answered with one text frame.
type User struct {
	io   sync.Mutex
	conn io.ReadWriteCloser

	id  uint
	hub *Hub
}

func (u *User) readRequest() (*computeRoutesRequest, error) {
	u.io.Lock()
	defer u.io.Unlock()

	h, r, err := wsutil.NextReader(u.conn, ws.StateServerSide)
	if err != nil {
		return nil, err
	}
	if h.OpCode.IsControl() {
		return nil, wsutil.ControlFrameHandler(u.conn, ws.StateServerSide)(h, r)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	req := &computeRoutesRequest{}
	if err := json.Unmarshal(payload, req); err != nil {
		return req, errMalformedRequest{err: err}
	}
	return req, nil
}

type errMalformedRequest struct {
	err error
}

func (e errMalformedRequest) Error() string {
	return "malformed request: " + e.err.Error()
}

// ComputeRoutes. reads one frame and writes the answer. a bad query is answered with an error payload,
// only transport errors are returned.
func (u *User) ComputeRoutes() error {
	req, err := u.readRequest()
	var malformed errMalformedRequest
	if errors.As(err, &malformed) {
		return u.write(errorEnvelope(http.StatusBadRequest, malformed.Error()))
	}
	if err != nil {
		return err
	}

	if req == nil {
		return nil
	}

	if err := u.hub.validator.Struct(req); err != nil {
		return u.write(errorEnvelope(http.StatusBadRequest, err.Error()))
	}

	destinations, err := req.Destination.selector(u.hub.routingService.NumberOfCities())
	if err != nil {
		return u.write(errorEnvelope(http.StatusBadRequest, err.Error()))
	}

	route, err := u.hub.routingService.ComputeRoutes(datastructure.Index(*req.Origin), destinations)
	if err != nil {
		status := statusCode(err)
		if status == http.StatusInternalServerError {
			u.hub.log.Error("websocket route query failed", zap.Uint("user", u.id), zap.Error(err))
		}
		return u.write(errorEnvelope(status, err.Error()))
	}

	return u.write(envelope{"data": NewRoutesResponse(route)})
}

// Serve. answers queries until the peer closes the connection or a transport error occurs
func (u *User) Serve() error {
	for {
		err := u.ComputeRoutes()
		var closed wsutil.ClosedError
		if errors.As(err, &closed) || errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (u *User) write(x interface{}) error {
	w := wsutil.NewWriter(u.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)

	u.io.Lock()
	defer u.io.Unlock()

	if err := encoder.Encode(x); err != nil {
		return err
	}

	return w.Flush()
}

func (u *User) GetID() uint {
	return u.id
}

type Hub struct {
	mu             sync.RWMutex
	seq            uint
	us             []*User
	ns             map[uint]*User
	routingService RoutingService
	validator      *requestValidator
	log            *zap.Logger
}

func NewHub(routingService RoutingService, log *zap.Logger) *Hub {
	return &Hub{
		ns:             make(map[uint]*User),
		us:             make([]*User, 0),
		routingService: routingService,
		validator:      newRequestValidator(),
		log:            log,
	}
}

func (h *Hub) Register(conn io.ReadWriteCloser) *User {
	user := &User{
		hub:  h,
		conn: conn,
	}

	h.mu.Lock()
	user.id = h.seq
	h.ns[user.id] = user
	h.us = append(h.us, user)

	h.seq++
	h.mu.Unlock()

	return user
}

func (h *Hub) Remove(user *User) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.ns[user.id]; !ok {
		return
	}
	delete(h.ns, user.id)

	// ids are handed out in increasing order, so us stays sorted
	i := sort.Search(len(h.us), func(i int) bool {
		return h.us[i].id >= user.id
	})

	newUs := make([]*User, len(h.us)-1)
	copy(newUs[:i], h.us[:i])
	copy(newUs[i:], h.us[i+1:])
	h.us = newUs
}

func (h *Hub) NumberOfUsers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.us)
}

// RemoveAllUser. closes every session, their Serve loops return
func (h *Hub) RemoveAllUser() {
	h.mu.RLock()
	users := make([]*User, len(h.us))
	copy(users, h.us)
	h.mu.RUnlock()

	for _, user := range users {
		user.conn.Close()
		h.Remove(user)
	}
}
