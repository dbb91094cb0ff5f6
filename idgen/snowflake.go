package idgen

import (
	"sync"

	"bonded-wms/logger"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init creates the generator node. GenerateID calls it lazily, so calling
// it explicitly only moves the failure to startup.
func Init() {
	once.Do(func() {
		var err error
		node, err = snowflake.NewNode(1)
		if err != nil {
			logger.L().Fatal("Failed to init Snowflake", zap.Error(err))
		}
	})
}

func GenerateID() int64 {
	Init()
	return node.Generate().Int64()
}
