package main

import (
	"context"

	"eru-extint-go/services/extint"
	"eru-extint-go/x/logx"
)

func main() {
	logx.Info("boot")

	// Setup failures stop here; the line itself idles forever.
	if err := extint.RunSelected(context.Background()); err != nil {
		logx.Warn("extint:", err)
	}
}
