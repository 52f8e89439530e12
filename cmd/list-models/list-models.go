package main

import (
	"github.com/charlespascoe/list-models/pkg/models"
)

type ListModelsCmd struct{}

func (listmodels *ListModelsCmd) Run(ctx *Context) error {
	list, err := ctx.Client.List(ctx)
	if err != nil {
		return err
	}

	return models.Render(ctx.Stdout, list)
}
