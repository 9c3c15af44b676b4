package main

import (
	"fmt"
	"strings"
	"time"
)

const (
	AnimationServer = "server"
	AnimationClient = "client"
	AnimationNone   = "none"
)

// InstantAnimator completes as soon as it is played.
type InstantAnimator struct{}

func (InstantAnimator) Play(onComplete func()) { onComplete() }

// ClientAnimator leaves the rocket launch to the browser, which reports
// completion through POST /quiz/transition-complete.
type ClientAnimator struct{}

func (ClientAnimator) Play(func()) {}

// LaunchAnimator holds the gate for the length of the rocket launch and
// then completes on its own.
type LaunchAnimator struct {
	Duration time.Duration
}

func (a LaunchAnimator) Play(onComplete func()) {
	time.AfterFunc(a.Duration, onComplete)
}

// NewAnimator maps ANIMATION_MODE to an Animator.
func NewAnimator(mode string, launch time.Duration) (Animator, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case AnimationServer:
		return LaunchAnimator{Duration: launch}, nil
	case AnimationClient, "":
		return ClientAnimator{}, nil
	case AnimationNone:
		return InstantAnimator{}, nil
	default:
		return nil, fmt.Errorf("unknown animation mode %q", mode)
	}
}
