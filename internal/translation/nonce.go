package translation

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// gregorianOffset is the number of 100ns intervals between 1582-10-15 and the
// Unix epoch.
const gregorianOffset = 122192928000000000

// nonceSource produces version-1 UUIDs for Youdao salts. The node id is
// random with the locally-administered bit set and the multicast bit cleared,
// so it never collides with a hardware address. The clock sequence is drawn
// per nonce, which leaves no mutable state to share between goroutines.
type nonceSource struct {
	random io.Reader
	node   [6]byte
}

func newNonceSource(random io.Reader) (*nonceSource, error) {
	n := &nonceSource{random: random}
	if _, err := io.ReadFull(random, n.node[:]); err != nil {
		return nil, fmt.Errorf("read node id: %w", err)
	}
	n.node[0] = (n.node[0] | 0x02) &^ 0x01
	return n, nil
}

// Next returns a fresh nonce for the instant now.
func (n *nonceSource) Next(now time.Time) (uuid.UUID, error) {
	var seq [2]byte
	if _, err := io.ReadFull(n.random, seq[:]); err != nil {
		return uuid.Nil, fmt.Errorf("read clock sequence: %w", err)
	}

	ticks := uint64(now.UnixNano()/100) + gregorianOffset
	var id uuid.UUID
	binary.BigEndian.PutUint32(id[0:4], uint32(ticks))
	binary.BigEndian.PutUint16(id[4:6], uint16(ticks>>32))
	binary.BigEndian.PutUint16(id[6:8], uint16(ticks>>48)&0x0fff|0x1000)
	id[8] = seq[0]&0x3f | 0x80
	id[9] = seq[1]
	copy(id[10:], n.node[:])
	return id, nil
}
