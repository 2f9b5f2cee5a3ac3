package services

import "sync"

// ChannelID -> UserID -> Client ID
var subscribeInfo = make(map[uint]map[uint]string)
var subscribeLock sync.Mutex

// Users subscribed to a channel get new messages over the websocket and
// skip the notification fan-out.

func CheckSubscribed(userId uint, channelId uint) bool {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	if _, ok := subscribeInfo[channelId]; ok {
		if _, ok := subscribeInfo[channelId][userId]; ok {
			return true
		}
	}
	return false
}

func SubscribeChannel(userId uint, channelId uint, clientId string) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	if _, ok := subscribeInfo[channelId]; !ok {
		subscribeInfo[channelId] = make(map[uint]string)
	}
	subscribeInfo[channelId][userId] = clientId
}

func UnsubscribeChannel(userId uint, channelId uint) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	if _, ok := subscribeInfo[channelId]; ok {
		delete(subscribeInfo[channelId], userId)
	}
}

func UnsubscribeAll(userId uint) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	for _, v := range subscribeInfo {
		delete(v, userId)
	}
}

func UnsubscribeAllWithChannels(channelId uint) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	delete(subscribeInfo, channelId)
}

func UnsubscribeAllWithClient(clientId string) {
	subscribeLock.Lock()
	defer subscribeLock.Unlock()
	for _, v := range subscribeInfo {
		for k, item := range v {
			if item == clientId {
				delete(v, k)
			}
		}
	}
}
