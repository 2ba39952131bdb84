package config

// Configs holds the named configurations. Sections left out of a named
// configuration are taken from "default".
var Configs = map[string]string{
	"default": `{
	"Simulator": {
		"Addr": "127.0.0.1:8096",
		"DialTimeout": "5s",
		"DialRetries": 5
	},
	"Scheduler": {
		"Algorithm": "largest",
		"Feasibility": "full",
		"StatsLatch": "15s"
	}
}`,

	"local.largest": `{
	"Scheduler": {
		"Algorithm": "largest",
		"Feasibility": "full"
	}
}`,

	"local.ff": `{
	"Scheduler": {
		"Algorithm": "ff",
		"Feasibility": "full"
	}
}`,

	"local.bf": `{
	"Scheduler": {
		"Algorithm": "bf",
		"Feasibility": "full"
	}
}`,

	"local.wf": `{
	"Scheduler": {
		"Algorithm": "wf",
		"Feasibility": "full"
	}
}`,

	"local.bc": `{
	"Scheduler": {
		"Algorithm": "bfp",
		"Feasibility": "full"
	}
}`,
}
