package bench

// Distributes the arena events between several listeners, in order
type ArenaListener struct {
	listeners []ListenerLike
}

func NewArenaListener(listeners ...ListenerLike) *ArenaListener {
	al := &ArenaListener{listeners: make([]ListenerLike, 0, len(listeners))}
	for _, l := range listeners {
		if l != nil {
			al.listeners = append(al.listeners, l)
		}
	}
	return al
}

func (al *ArenaListener) Add(l ListenerLike) *ArenaListener {
	if l != nil {
		al.listeners = append(al.listeners, l)
	}
	return al
}

func (al *ArenaListener) OnStart() {
	for _, l := range al.listeners {
		l.OnStart()
	}
}

func (al *ArenaListener) OnFinishedGame(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnFinishedGame(info)
	}
}

func (al *ArenaListener) OnFinishedWork(info VersusWorkerInfo) {
	for _, l := range al.listeners {
		l.OnFinishedWork(info)
	}
}

func (al *ArenaListener) Summary(summary VersusSummaryInfo) {
	for _, l := range al.listeners {
		l.Summary(summary)
	}
}

func (al *ArenaListener) OnEnd() {
	for _, l := range al.listeners {
		l.OnEnd()
	}
}
