package main

import (
	"log"
	"os"

	"git.lost.host/meutraa/notecanvas/internal/config"
	"git.lost.host/meutraa/notecanvas/internal/logger"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if nil != err {
		return err
	}

	lg, err := logger.New(cfg.Debug)
	if nil != err {
		return err
	}
	defer func() {
		_ = lg.Sync()
	}()

	p, err := NewProgram(cfg, lg)
	if nil != err {
		return err
	}
	p.Out = os.Stdout

	if cfg.Interactive {
		return p.Interactive()
	}
	return p.Batch()
}
