// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// Package playground é um servidor HTTP mock com estado, feito para exercitar
// ferramentas de teste de API (Postman, newman, clientes com retry) contra
// comportamentos controláveis e determinísticos.
//
// Visão Geral:
// Os dados (usuários, itens, pedidos) são fixtures em memória gerados uma única
// vez no boot. Sobre eles roda um pequeno motor de simulação:
//
//   - toggle: endpoint instável que alterna falha (500) e sucesso (200) a cada chamada.
//   - pagination: páginas de tamanho fixo com cursor "nextPage".
//   - timewindow: pares início/fim em UTC deslocados de "agora".
//
// Sub-Pacotes Principais:
//
//   - pkg/fixtures: dataset imutável e buscas por ID.
//   - pkg/transport: roteador gorilla/mux, middleware de observabilidade e adaptador Lambda.
//   - pkg/config: YAML local, S3 ou DynamoDB, com interpolação ${env.*}, ${ssm.*} e ${secret.*}.
//   - pkg/logger e pkg/observability: zerolog e métricas Datadog.
//
// Exemplo de Uso:
//
//	CONFIG_FILE_PATH=cmd/server/playground.yaml go run ./cmd/server
//
//	curl -s localhost:3000/items?page=4
//	# {"items":[...16..20...],"nextPage":null}
//
//	curl -s -H "Authorization: Bearer abc123" localhost:3000/protected
//	# {"message":"This is protected"}
package playground
