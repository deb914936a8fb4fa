package commands

import (
	"tableflip.dev/wendy/pkg/app"
	"tableflip.dev/wendy/pkg/printers"
	"tableflip.dev/wendy/pkg/store"
)

// session is the configured store opened for the duration of one command.
type session struct {
	cfg store.Config
	kv  store.KV
	svc *app.Service
}

func openSession() (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	kv, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, kv: kv, svc: app.New(kv)}, nil
}

func (s *session) Close() {
	_ = s.kv.Close()
}

func (s *session) output(showID bool) printers.Output {
	return printers.Output{
		ShowID:   showID,
		Currency: s.cfg.Currency(),
		JSON:     oo.JSON,
	}
}

// run opens a session, hands it to fn and closes it again.
func run(fn func(s *session) error) error {
	s, err := openSession()
	if err != nil {
		return oo.HandleError(err)
	}
	defer s.Close()
	return oo.HandleError(fn(s))
}
