// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package session

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/AleutianAI/LatticeQEC/services/decoder"
)

// RegisterValidators installs the identifier validations used by the
// request bindings on gin's validator engine. Call once at startup.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("knowncode", func(fl validator.FieldLevel) bool {
		return decoder.KnownCode(fl.Field().String())
	})
	_ = v.RegisterValidation("knowndecoder", func(fl validator.FieldLevel) bool {
		return decoder.KnownDecoder(fl.Field().String())
	})
	_ = v.RegisterValidation("knownerrormodel", func(fl validator.FieldLevel) bool {
		return decoder.KnownErrorModel(fl.Field().String())
	})
}

// RegisterRoutes mounts the session API on r.
func RegisterRoutes(r *gin.Engine, s *Session) {
	r.Use(otelgin.Middleware("latticeqec-session"))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "state": s.State().String()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.GET("/lattice", handleGetLattice(s))
		v1.POST("/lattice", handleRebuild(s))
		v1.POST("/lattice/toggle", handleToggle(s))
		v1.PUT("/params", handleSetParams(s))
		v1.POST("/errors/random", handleSampleErrors(s))
		v1.POST("/decode", handleDecode(s))
	}

	r.GET("/ws", HandleWebSocket(s))
}
