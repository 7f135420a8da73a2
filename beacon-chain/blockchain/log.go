package blockchain

import (
	"encoding/hex"
	"fmt"

	consensustypes "github.com/basalt-chain/forkchoice/consensus-types"
	"github.com/basalt-chain/forkchoice/consensus-types/primitives"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "blockchain")

func truncRoot(root [32]byte) string {
	return fmt.Sprintf("0x%s...", hex.EncodeToString(root[:])[:8])
}

func logBlockIngested(slot primitives.Slot, root [32]byte) {
	log.WithFields(logrus.Fields{
		"slot": slot,
		"root": truncRoot(root),
	}).Debug("Executing state transition on block")
}

func logCheckpointAdvanced(kind string, cp consensustypes.Checkpoint) {
	log.WithFields(logrus.Fields{
		"epoch": cp.Epoch,
		"root":  truncRoot(cp.Root),
	}).Infof("%s checkpoint advanced", kind)
}

func logBlockRejected(slot primitives.Slot, root [32]byte, err error) {
	log.WithFields(logrus.Fields{
		"slot":  slot,
		"root":  truncRoot(root),
		"error": err,
	}).Warn("Rejected incoming block")
}
