package state

import "maps"

// RealtimeData holds presence flags pushed by the realtime channel.
type RealtimeData struct {
	Connected bool
	Online    map[string]bool
}

// RealtimeSlice tracks connection and presence flags. It has no async
// operations; the transport pushes changes in.
type RealtimeSlice struct {
	base[RealtimeData]
}

// SetConnected records the channel state. Disconnecting clears presence.
func (r *RealtimeSlice) SetConnected(connected bool) {
	r.set("connected", func(d *RealtimeData) {
		d.Connected = connected
		if !connected {
			d.Online = nil
		}
	})
}

// SetPresence records whether userID is online.
func (r *RealtimeSlice) SetPresence(userID string, online bool) {
	r.set("presence", func(d *RealtimeData) {
		next := maps.Clone(d.Online)
		if next == nil {
			next = make(map[string]bool)
		}
		if online {
			next[userID] = true
		} else {
			delete(next, userID)
		}
		d.Online = next
	})
}

// IsOnline reports the presence flag for userID.
func (r *RealtimeSlice) IsOnline(userID string) bool {
	return r.Snapshot().Data.Online[userID]
}
