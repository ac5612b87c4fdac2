// Package api provides the CDH topology validation REST API.
//
//	@title						CDH Plugin Validation API
//	@version					1.0
//	@description				Validates Cloudera (CDH) cluster topologies before creation and scaling
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-API-Key
package api
