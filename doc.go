// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

/*
Package settings resolves typed configuration from layered sources.

A [Resolver] loads the values of fields described by a [schema.Object] from several sources,
and deep merges them by precedence into a single nested map[string]any.
By default the sources are, from the highest precedence to the lowest:
  - keywords provided by the caller;
  - environment variables, e.g. `APP_HTTP_PORT` for the field `port` of the nested field `http`;
  - the dotenv file, `.env` by default;
  - the config file in JSON, YAML, TOML or HCL2 format, if provided.

[Resolver.Load] derives the schema from a struct, and decodes the resolved values into it.
There is a default Resolver accessible through top-level functions
(such as [Load] and [Resolve]) that call the corresponding Resolver methods.
*/
package settings
