// Package config loads the tripstats configuration from YAML.
//
// Example config.yml:
//
//	analyzer:
//	  topK: 10
//	store:
//	  engine: badger
//	  path: /var/lib/tripstats
//	  cacheEnabled: true
//	log:
//	  service: tripstats
//	  level: INFO
//
// Omitted fields keep the values of Default.
package config
