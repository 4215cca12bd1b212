package wifi

import (
	"math/rand"
	"time"

	log "github.com/apex/log"
	ccsds "github.com/justincpresley/esat-wifi/pkg/ccsds"
)

// MainLoop owns a Wifi and runs its iterations on a single goroutine, once
// per jittered period or sooner when woken. Other goroutines reach it only
// through Submit and SignalTelemetryQueueReset.
type MainLoop struct {
	wifi       *Wifi
	downlink   Downlink
	inbox      chan *ccsds.Packet
	wake       chan struct{}
	stop       chan struct{}
	done       chan struct{}
	interval   time.Duration
	randomness float32
	logger     *log.Entry
}

func NewMainLoop(w *Wifi, downlink Downlink, constants *Constants) *MainLoop {
	return &MainLoop{
		wifi:       w,
		downlink:   downlink,
		inbox:      make(chan *ccsds.Packet, constants.InboxSize),
		wake:       make(chan struct{}, 1),
		interval:   constants.LoopInterval,
		randomness: constants.LoopIntervalRandomness,
		logger:     log.WithField("module", "wifi"),
	}
}

// Start launches the loop; with execute the first iteration runs at once.
func (l *MainLoop) Start(execute bool) {
	l.stop = make(chan struct{})
	l.done = make(chan struct{})
	go l.target(execute)
}

// Stop waits for the running iteration to finish. It does nothing on a
// loop that is not running.
func (l *MainLoop) Stop() {
	if l.done == nil {
		return
	}
	close(l.stop)
	<-l.done
	l.done = nil
}

// Submit queues a telecommand for the next iteration and wakes the loop.
// It reports false when the inbox is full.
func (l *MainLoop) Submit(packet *ccsds.Packet) bool {
	select {
	case l.inbox <- packet:
		l.Wake()
		return true
	default:
		l.logger.Warnf("Inbox full, dropped telecommand 0x%02X.", packet.SecondaryHeader().PacketIdentifier)
		return false
	}
}

// SignalTelemetryQueueReset is the reset line edge: the request is
// recorded and the loop woken so that it is acted on without waiting for
// the period.
func (l *MainLoop) SignalTelemetryQueueReset() {
	l.wifi.SignalTelemetryQueueReset()
	l.Wake()
}

// Wake requests an immediate iteration. Requests made before the loop
// gets to them coalesce.
func (l *MainLoop) Wake() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *MainLoop) target(execute bool) {
	defer close(l.done)
	if execute {
		l.iterate()
	}
	timer := time.NewTimer(AddRandomness(l.interval, l.randomness))
	defer timer.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-timer.C:
			l.iterate()
			timer.Reset(AddRandomness(l.interval, l.randomness))
		case <-l.wake:
			l.iterate()
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(AddRandomness(l.interval, l.randomness))
		}
	}
}

func (l *MainLoop) iterate() {
	l.wifi.Iterate(l.inbox, l.downlink)
}

func AddRandomness(value time.Duration, randomness float32) time.Duration {
	spread := int(float32(value) * randomness)
	if spread <= 0 {
		return value
	}
	return value + time.Duration(rand.Intn(spread))
}
